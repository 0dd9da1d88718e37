// internal/store/file.go
//
// Text-file score store. The file holds two whitespace-separated
// non-negative integers: "wins losses".

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
)

// FileStore persists the score to a plain text file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. The file need not exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path is the file backing the store.
func (f *FileStore) Path() string { return f.path }

// Load reads the file. Missing, empty or malformed content yields a zero Score.
func (f *FileStore) Load(ctx context.Context) game.Score {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("file", f.path).Msg("no score file, starting at 0-0")
		} else {
			log.Warn().Err(err).Str("file", f.path).Msg("read score file")
		}
		return game.Score{}
	}
	s, err := parseScore(string(b))
	if err != nil {
		log.Warn().Err(err).Str("file", f.path).Msg("malformed score file, starting at 0-0")
		return game.Score{}
	}
	return s
}

// Save overwrites the file with "wins losses". The content is written to a
// temporary file in the same directory and renamed into place.
func (f *FileStore) Save(ctx context.Context, s game.Score) error {
	dir := filepath.Dir(f.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	tmp, err := os.CreateTemp(dir, ".score-*")
	if err != nil {
		return fmt.Errorf("create temp score file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(formatScore(s)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write score: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// Close is a no-op.
func (f *FileStore) Close() error { return nil }

func formatScore(s game.Score) string {
	return fmt.Sprintf("%d %d", s.Wins, s.Losses)
}

func parseScore(text string) (game.Score, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return game.Score{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	var vals [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return game.Score{}, err
		}
		if n < 0 {
			return game.Score{}, fmt.Errorf("negative value %d", n)
		}
		vals[i] = n
	}
	return game.Score{Wins: vals[0], Losses: vals[1]}, nil
}
