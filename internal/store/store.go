// internal/store/store.go
//
// Persistence for the win/loss score.
//
// The score is loaded once when a session starts and saved once when it ends.
// Loading never fails: missing or unreadable data yields a zero Score so the
// game always starts. Saving reports errors to the caller, which logs them.
//
// Backends:
//   - FileStore:   plain text "wins losses" (default).
//   - SQLiteStore: single-row table in a SQLite database.
//   - memory:      in-process only (tests, SCORE_BACKEND=memory).

package store

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/game"
)

// Store defines the persistence interface for the score.
type Store interface {
	// Load returns the persisted score, or a zero Score when none is usable.
	Load(ctx context.Context) game.Score

	// Save overwrites the persisted score.
	Save(ctx context.Context, s game.Score) error

	// Close releases backend resources.
	Close() error
}

// Open returns the backend selected by cfg. If the SQLite database cannot be
// opened the file backend is used instead.
func Open(cfg config.Config) Store {
	switch cfg.ScoreBackend {
	case config.BackendMemory:
		return NewMemoryStore()
	case config.BackendSQLite:
		st, err := OpenSQLite(cfg.ScoreDB)
		if err == nil {
			return st
		}
		log.Warn().Err(err).Str("db", cfg.ScoreDB).Str("fallback", cfg.ScoreFile).Msg("sqlite score store unavailable")
	}
	return NewFileStore(cfg.ScoreFile)
}
