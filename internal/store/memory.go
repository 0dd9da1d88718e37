// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// State is lost when the process exits.

package store

import (
	"context"

	"github.com/robalobadob/hangman/internal/game"
)

// memory keeps the score in a field.
type memory struct {
	score game.Score
	saves int
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// NewMemoryStoreWith constructs an in-memory Store holding s.
func NewMemoryStoreWith(s game.Score) Store {
	return &memory{score: s}
}

func (m *memory) Load(ctx context.Context) game.Score { return m.score }

func (m *memory) Save(ctx context.Context, s game.Score) error {
	m.score = s
	m.saves++
	return nil
}

func (m *memory) Close() error { return nil }

// Saves reports how many times Save was called on a memory store; other
// stores report -1.
func Saves(st Store) int {
	if m, ok := st.(*memory); ok {
		return m.saves
	}
	return -1
}
