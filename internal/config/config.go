// internal/config/config.go
//
// Environment configuration for wrdl.
// Responsibilities:
//   - Load an optional .env file (missing file is not an error).
//   - Resolve data, log, and server settings with defaults.
//
// Notes:
//   - Flags are parsed in main; this package only knows the environment.

package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds settings resolved from the environment.
type Config struct {
	DBPath    string        // WRDL_DATA
	LogFile   string        // WRDL_LOG_FILE
	LogLevel  zerolog.Level // LOG_LEVEL
	DailySalt string        // DAILY_SALT
	Port      string        // PORT
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv resolves Config from the current environment only.
func FromEnv() (Config, error) {
	dbPath := getEnv("WRDL_DATA", "")
	if dbPath == "" {
		dir, err := dataDir()
		if err != nil {
			return Config{}, err
		}
		dbPath = filepath.Join(dir, "wrdl", "wrdl.db")
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return Config{
		DBPath:    dbPath,
		LogFile:   getEnv("WRDL_LOG_FILE", filepath.Join(filepath.Dir(dbPath), "wrdl.log")),
		LogLevel:  lvl,
		DailySalt: getEnv("DAILY_SALT", "wrdl"),
		Port:      getEnv("PORT", "5175"),
	}, nil
}

// dataDir follows XDG: $XDG_DATA_HOME, else ~/.local/share.
func dataDir() (string, error) {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.New("cannot locate a data directory: set WRDL_DATA")
	}
	return filepath.Join(home, ".local", "share"), nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
