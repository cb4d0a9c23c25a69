// Package config loads server settings from the environment, with a
// .env file honored when present.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"dovela/internal/errors"
)

type Config struct {
	Addr        string
	CertFile    string
	KeyFile     string
	DatabaseURL string
	TokenKey    string

	LogLevel  string
	LogFormat string

	SweepWorkers int

	RateLimit int
	RateBurst int
}

// Load reads configuration from the environment. TOKEN_KEY is the only
// required setting; everything else has a usable default.
func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Addr:         getenv("ADDR", ":443"),
		CertFile:     getenv("TLS_CERT", "server.crt"),
		KeyFile:      getenv("TLS_KEY", "server.key"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		TokenKey:     os.Getenv("TOKEN_KEY"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "json"),
		SweepWorkers: getint("SWEEP_WORKERS", 4),
		RateLimit:    getint("RATE_LIMIT", 1),
		RateBurst:    getint("RATE_BURST", 3),
	}
	if cfg.TokenKey == "" {
		return Config{}, errors.New(errors.TypeConfig, "TOKEN_KEY environment variable is not set")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
