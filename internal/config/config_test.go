package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"SCORE_BACKEND", "SCORE_FILE", "SCORE_DB", "LOG_LEVEL", "LOG_FILE", "SOUND"} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		ScoreBackend: BackendFile,
		ScoreFile:    "score.txt",
		ScoreDB:      "data/hangman.db",
		LogLevel:     "info",
		Sound:        true,
	}, cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCORE_BACKEND", "SQLite")
	t.Setenv("SCORE_DB", "/tmp/x.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/hangman.log")
	t.Setenv("SOUND", "off")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.ScoreBackend)
	assert.Equal(t, "/tmp/x.db", cfg.ScoreDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/hangman.log", cfg.LogFile)
	assert.False(t, cfg.Sound)
}

func TestFromEnvRejectsUnknownValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCORE_BACKEND", "redis")
	_, err := FromEnv()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("SOUND", "loud")
	_, err = FromEnv()
	assert.Error(t, err)
}
