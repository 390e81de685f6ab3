package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates the service configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig describes the conversation store backend. An empty URL means
// the service runs on the in-memory store.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	database := DatabaseConfig{
		URL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}

	return &Config{Server: server, Database: database}, nil
}

// Configured reports whether a database backend was requested.
func (c DatabaseConfig) Configured() bool {
	return c.URL != ""
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}
