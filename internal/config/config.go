// Package config loads application configuration from environment
// variables.  Required variables are enforced with must(); optional
// integrations (identity provider, Redis, RabbitMQ) stay disabled when
// their variables are unset.
package config

import (
	"log"
	"os"
)

// Config holds all runtime configuration values.
type Config struct {
	Env        string // application environment ("dev", "prod")
	Port       string // HTTP port to listen on
	DBPath     string // path of the SQLite database file
	JWTSecret  string // secret used to verify identity-provider tokens
	LogLevel   string // zap level: debug/info/warn/error
	IDPBaseURL string // identity-provider admin API base URL (optional)
	IDPAPIKey  string // identity-provider API key (optional)
	AMQPURL    string // RabbitMQ URL for audit events (optional)
}

// Load reads configuration from the environment.  Missing required
// variables cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:        must("APP_ENV"),
		Port:       must("APP_PORT"),
		DBPath:     must("DB_PATH"),
		JWTSecret:  must("JWT_SECRET"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		IDPBaseURL: os.Getenv("IDP_BASE_URL"),
		IDPAPIKey:  os.Getenv("IDP_API_KEY"),
		AMQPURL:    os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
