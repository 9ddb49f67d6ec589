package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: issuer claim for session tokens

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./sitewatch.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SessionTTL           time.Duration // Optional: access token lifetime (default: 12h)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)

	// Invite mail delivery. Leaving SMTPHost empty disables outbound mail;
	// invites still work, the token just has to reach the invitee some
	// other way.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPUseTLS   bool
	BaseURL      string // Public base URL used in invite accept links
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("SITEWATCH_ISSUER", "sitewatch"),
		DatabaseFile:         getEnvOrDefault("SITEWATCH_DATABASE_FILE", "sitewatch.db"),
		PepperFile:           getEnvOrDefault("SITEWATCH_PEPPER_FILE", "pepper"),
		SessionTTL:           getEnvDurationOrDefault("SITEWATCH_SESSION_TTL", 12*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		SMTPHost:     os.Getenv("SITEWATCH_SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SITEWATCH_SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SITEWATCH_SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SITEWATCH_SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("SITEWATCH_SMTP_FROM", "no-reply@sitewatch.local"),
		SMTPUseTLS:   getEnvBoolOrDefault("SITEWATCH_SMTP_USE_TLS", false),
		BaseURL:      getEnvOrDefault("SITEWATCH_BASE_URL", "http://localhost:8080"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
