package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is loaded once at process start and handed to constructors.
// Nothing below cmd/ reads the environment directly.
type Config struct {
	Port   string
	AppEnv string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool

	RedisAddr   string
	KafkaBroker string

	JWTSecret        string
	TenantTokenTTL   time.Duration
	EmployeeTokenTTL time.Duration
	OperatorKey      string

	UploadDir string

	OneSignalAppID  string
	OneSignalAPIKey string
	OneSignalURL    string

	OutboxPollInterval time.Duration
}

var ErrMissingJWTSecret = errors.New("config: JWT_SECRET is required")

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:   get("PORT", "3000"),
		AppEnv: get("APP_ENV", "development"),

		DBHost:        get("DB_HOST", "localhost"),
		DBPort:        get("DB_PORT", "5432"),
		DBUser:        get("DB_USER", "postgres"),
		DBPassword:    get("DB_PASSWORD", ""),
		DBName:        get("DB_NAME", "shifty"),
		DBSSLMode:     get("DB_SSLMODE", "disable"),
		DBAutoMigrate: getBool("DB_AUTO_MIGRATE", false),

		RedisAddr:   get("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: get("KAFKA_BROKER", ""),

		JWTSecret:        get("JWT_SECRET", ""),
		TenantTokenTTL:   getDuration("TENANT_TOKEN_TTL", time.Hour),
		EmployeeTokenTTL: getDuration("EMPLOYEE_TOKEN_TTL", 24*time.Hour),
		OperatorKey:      get("OPERATOR_KEY", ""),

		UploadDir: get("UPLOAD_DIR", "uploads"),

		OneSignalAppID:  get("ONESIGNAL_APP_ID", ""),
		OneSignalAPIKey: get("ONESIGNAL_API_KEY", ""),
		OneSignalURL:    get("ONESIGNAL_URL", "https://onesignal.com/api/v1/notifications"),

		OutboxPollInterval: getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DSN pins the session time zone to UTC; week bucketing relies on it.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
