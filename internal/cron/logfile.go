package cron

import (
	"fmt"
	"os"
)

// Timestamp layouts are external contracts consumed by log scraping.
const (
	heartbeatTimeLayout = "02/01/2006-15:04:05"
	jobTimeLayout       = "2006-01-02 15:04:05"
)

// appendLine appends one line to an append-only job log.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintln(f, line)
	return err
}
