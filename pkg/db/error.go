package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Raw driver messages for uniqueness violations. gorm only yields
// ErrDuplicatedKey when the dialector translates errors, so the driver
// strings are matched as well.
var duplicateKeyMarkers = []string{
	"duplicate key value violates unique constraint", // postgres, code 23505
	"Error 1062",               // mysql
	"UNIQUE constraint failed", // sqlite
}

// IsDuplicateKeyErr reports whether err is a uniqueness-constraint violation
// from any of the supported engines. The store constraint is the final
// authority on uniqueness; callers re-label these as duplicate-key domain
// errors instead of leaking the raw store error.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := err.Error()
	for _, marker := range duplicateKeyMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
