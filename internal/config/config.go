package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. It is loaded once in main and
// passed explicitly into constructors; nothing reads the environment after
// startup.
type Config struct {
	// DBPath is the path to the sqlite database file.
	DBPath string

	// Port the HTTP server listens on.
	Port string

	// SessionTTL is how long a login session stays valid.
	SessionTTL time.Duration

	// BootstrapUser and BootstrapPassword seed the first account when the
	// user table is empty. Operational tooling only, not a security boundary.
	BootstrapUser     string
	BootstrapPassword string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBPath:            getEnv("BLOGGABLE_DB_PATH", "./bloggable.db"),
		Port:              getEnv("BLOGGABLE_PORT", "8080"),
		SessionTTL:        getEnvAsDuration("BLOGGABLE_SESSION_TTL_MINUTES", 60) * time.Minute,
		BootstrapUser:     getEnv("BLOGGABLE_BOOTSTRAP_USER", "admin"),
		BootstrapPassword: getEnv("BLOGGABLE_BOOTSTRAP_PASSWORD", "1234"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultMinutes int) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return time.Duration(defaultMinutes)
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		return time.Duration(defaultMinutes)
	}
	return time.Duration(value)
}
