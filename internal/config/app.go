package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv reads KEY=VALUE pairs from the given files (".env" when none are
// given) into the environment. Variables that are already set win. Missing
// files are not an error.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file: %w", err)
	}
	return nil
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Addr() string {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok || addr == "" {
		return ":8080"
	}
	return addr
}

func LogLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	default:
		if Development() {
			return slog.LevelDebug
		}
		return slog.LevelInfo
	}
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an int: %w", key, err)
	}
	return n, nil
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

// AllowedOrigins lists the CORS origins from the comma separated
// CORS_ORIGINS variable. Empty means any origin.
func AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
