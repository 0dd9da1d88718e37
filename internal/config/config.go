// internal/config/config.go
//
// Runtime configuration read from the environment.
// A .env file in the working directory is loaded first when present
// (development convenience); real environment variables win.
//
// Environment variables:
//   SCORE_BACKEND=file|sqlite|memory   (default file)
//   SCORE_FILE=score.txt               text "wins losses"
//   SCORE_DB=data/hangman.db           SQLite path for the sqlite backend
//   LOG_LEVEL=info                     zerolog level
//   LOG_FILE=                          log destination; empty discards logs
//   SOUND=on|off                       terminal bell on cues (default on)

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config bundles every runtime setting.
type Config struct {
	ScoreBackend string
	ScoreFile    string
	ScoreDB      string
	LogLevel     string
	LogFile      string
	Sound        bool
}

// Load reads .env (if any) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		ScoreBackend: strings.ToLower(getEnv("SCORE_BACKEND", BackendFile)),
		ScoreFile:    getEnv("SCORE_FILE", "score.txt"),
		ScoreDB:      getEnv("SCORE_DB", "data/hangman.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
	}

	switch cfg.ScoreBackend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return Config{}, fmt.Errorf("invalid SCORE_BACKEND %q (want file, sqlite or memory)", cfg.ScoreBackend)
	}

	switch s := strings.ToLower(getEnv("SOUND", "on")); s {
	case "on", "true", "1", "yes":
		cfg.Sound = true
	case "off", "false", "0", "no":
		cfg.Sound = false
	default:
		return Config{}, fmt.Errorf("invalid SOUND %q (want on or off)", s)
	}
	return cfg, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
