package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type CatalogConfig struct {
	// Path optionally points at a JSON seed file; empty means the embedded
	// catalog.
	Path string
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverHost := os.Getenv("SERVER_HOST")
	if serverHost == "" {
		serverHost = "localhost"
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080"
	}

	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %w", op, err)
	}

	authSecret := os.Getenv("AUTH_SECRET")
	if authSecret == "" {
		return nil, fmt.Errorf("%s: missing AUTH_SECRET", op)
	}

	tokenTTLStr := os.Getenv("AUTH_TOKEN_TTL_HOURS")
	if tokenTTLStr == "" {
		tokenTTLStr = "24"
	}

	tokenTTLHours, err := strconv.Atoi(tokenTTLStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid AUTH_TOKEN_TTL_HOURS: %w", op, err)
	}

	return &Config{
		Server: ServerConfig{
			Host: serverHost,
			Port: serverPort,
		},
		Auth: AuthConfig{
			Secret:   authSecret,
			TokenTTL: time.Duration(tokenTTLHours) * time.Hour,
		},
		Catalog: CatalogConfig{
			Path: os.Getenv("CATALOG_PATH"),
		},
	}, nil
}
