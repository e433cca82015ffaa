package logger

import (
	"fmt"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the root zap logger for the CRM, named after the service and
// tagged with its version, and replaces the globals. Components derive their
// own loggers via Named ("customer.service", "cron", ...).
func New(appCfg config.Config) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := appCfg.LogLevel
	if level == "" {
		level = "info"
	}
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log, err := cfg.Build(zap.Fields(zap.String("version", appCfg.AppVersion)))
	if err != nil {
		return nil, err
	}
	log = log.Named(appCfg.AppName)

	zap.ReplaceGlobals(log)
	return log, nil
}
