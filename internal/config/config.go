package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	Cron CronConfig
}

// CronConfig configures the periodic jobs that call the HTTP facade.
type CronConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	HeartbeatLog   string
	ReminderLog    string
	RestockLog     string
	HeartbeatEvery time.Duration
	RemindersEvery time.Duration
	RestockEvery   time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "crm"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8000"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "crm"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", "postgres"),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 25),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 300),

		Cron: CronConfig{
			BaseURL:        strings.TrimRight(getenv("CRM_BASE_URL", "http://localhost:8000"), "/"),
			RequestTimeout: getenvDuration("CRON_REQUEST_TIMEOUT", 20*time.Second),
			HeartbeatLog:   getenv("CRON_HEARTBEAT_LOG", "/tmp/crm_heartbeat_log.txt"),
			ReminderLog:    getenv("CRON_REMINDER_LOG", "/tmp/order_reminders_log.txt"),
			RestockLog:     getenv("CRON_RESTOCK_LOG", "/tmp/low_stock_updates_log.txt"),
			HeartbeatEvery: getenvDuration("CRON_HEARTBEAT_EVERY", 5*time.Minute),
			RemindersEvery: getenvDuration("CRON_REMINDERS_EVERY", 24*time.Hour),
			RestockEvery:   getenvDuration("CRON_RESTOCK_EVERY", 12*time.Hour),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// Module wires application configuration.
var Module = fx.Module("config",
	fx.Provide(Load),
)
