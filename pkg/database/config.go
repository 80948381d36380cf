package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables for the optional durable store.
const (
	EnvDBEnabled  = "AGX_DB_ENABLED"
	EnvDBHost     = "AGX_DB_HOST"
	EnvDBPort     = "AGX_DB_PORT"
	EnvDBUser     = "AGX_DB_USER"
	EnvDBPassword = "AGX_DB_PASSWORD"
	EnvDBName     = "AGX_DB_NAME"
	EnvDBSSLMode  = "AGX_DB_SSLMODE"
)

// Enabled reports whether the daemon should connect to PostgreSQL. Without
// it, graphs live in the in-memory store and do not survive restarts.
func Enabled() bool {
	v := os.Getenv(EnvDBEnabled)
	return v == "1" || v == "true"
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault(EnvDBPort, "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", EnvDBPort, err)
	}

	maxOpen, _ := strconv.Atoi(getEnvOrDefault("AGX_DB_MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("AGX_DB_MAX_IDLE_CONNS", "5"))

	return Config{
		Host:            getEnvOrDefault(EnvDBHost, "localhost"),
		Port:            port,
		User:            getEnvOrDefault(EnvDBUser, "agx"),
		Password:        os.Getenv(EnvDBPassword),
		Database:        getEnvOrDefault(EnvDBName, "agx"),
		SSLMode:         getEnvOrDefault(EnvDBSSLMode, "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
