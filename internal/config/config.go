package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	ListenAddr    string
	PublicBaseURL string // Base URL used in QR links and public card URLs
	CORSOrigin    string // Allowed origin for the SPA frontend
}

// SessionConfig holds session persistence and simulation configuration.
type SessionConfig struct {
	StorePath        string        // SQLite file backing the durable key-value store
	SimulatedLatency time.Duration // Fake backend round-trip applied to auth and card operations
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	latency := 800 * time.Millisecond
	if raw := os.Getenv("SIMULATED_LATENCY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SIMULATED_LATENCY %q: %w", raw, err)
		}
		latency = d
	}

	return &Config{
		Server: ServerConfig{
			ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
			PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
			CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:5173"),
		},
		Session: SessionConfig{
			StorePath:        getenv("SESSION_DB", "nfccards.sqlite"),
			SimulatedLatency: latency,
		},
		Logging: LoggingConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "json"),
		},
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
