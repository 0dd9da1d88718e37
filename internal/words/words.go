// internal/words/words.go
//
// Word bank for the game engine.
//
// Responsibilities:
//   - Load the three tier lists embedded under assets/words once (sync.Once).
//   - Validate lists: every tier present and non-empty, words A–Z only.
//   - Draw a uniformly random word for a tier.
//
// Word lists:
//   - easy.txt, medium.txt, hard.txt: one word per line, '#' comments and
//     blank lines skipped, normalised to uppercase.

package words

import (
	"errors"
	"fmt"
	"sync"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/game"
)

var (
	// ErrEmptyTier is returned when a tier has no words.
	ErrEmptyTier = errors.New("words: empty tier")
	// ErrInvalidWord is returned for a word that is not all A–Z.
	ErrInvalidWord = errors.New("words: invalid word")
)

var (
	defaultOnce sync.Once
	defaultBank *Bank
	defaultErr  error
)

// Bank maps each tier to its candidate words.
type Bank struct {
	lists map[game.Difficulty][]string
}

// Default returns the bank built from the embedded lists.
// The lists are read and validated exactly once.
func Default() (*Bank, error) {
	defaultOnce.Do(func() {
		lists := make(map[game.Difficulty][]string, len(game.Difficulties))
		for _, d := range game.Difficulties {
			l, err := assets.WordList(string(d))
			if err != nil {
				defaultErr = fmt.Errorf("load %s words: %w", d, err)
				return
			}
			lists[d] = l
		}
		defaultBank, defaultErr = New(lists)
	})
	return defaultBank, defaultErr
}

// New builds a bank from explicit lists. Every tier must be present.
func New(lists map[game.Difficulty][]string) (*Bank, error) {
	b := &Bank{lists: make(map[game.Difficulty][]string, len(game.Difficulties))}
	for _, d := range game.Difficulties {
		l := lists[d]
		if len(l) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTier, d)
		}
		out := make([]string, 0, len(l))
		for _, w := range l {
			if !isUpperAlpha(w) {
				return nil, fmt.Errorf("%w: %q in %s", ErrInvalidWord, w, d)
			}
			out = append(out, w)
		}
		b.lists[d] = out
	}
	return b, nil
}

// Pick returns a uniformly random word for d.
// d must be a valid tier.
func (b *Bank) Pick(d game.Difficulty, rng game.Rand) string {
	l := b.lists[d]
	return l[rng.IntN(len(l))]
}

// Words returns a copy of the list for d.
func (b *Bank) Words(d game.Difficulty) []string {
	return append([]string(nil), b.lists[d]...)
}

// isUpperAlpha reports whether s is non-empty and all uppercase ASCII letters.
func isUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
