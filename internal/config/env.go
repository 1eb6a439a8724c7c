package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide CLI defaults.
const (
	EnvDBPath   = "DODGE_DB"
	EnvSSHAddr  = "DODGE_SSH_ADDR"
	EnvLogLevel = "DODGE_LOG_LEVEL"
	EnvLogFile  = "DODGE_LOG_FILE"
)

// LoadEnv loads KEY=VALUE pairs from the given .env files (default ".env")
// without overriding variables already set. Missing files are not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// EnvOr returns the value of key, or fallback when it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
