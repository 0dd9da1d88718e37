// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Create rounds for a tier and a chosen word.
//   - Apply letter guesses (case-insensitive, A–Z only, duplicates ignored).
//   - Apply hints (at most MaxHints, never wasted on a visible letter).
//   - Derive the outcome: won once every position is revealed, lost once the
//     wrong-guess count reaches the tier allowance.
//
// Notes:
//   - Transitions return the cues they produced; the engine itself never
//     touches audio or the screen.
//   - Once a round is finished every transition is a no-op.
package game

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Placeholder is shown for an unrevealed position.
const Placeholder = '_'

// Rand is the randomness the engine needs; *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Round is the state of one word being guessed.
type Round struct {
	ID         string     // Round identifier, used to correlate log lines.
	Difficulty Difficulty // Tier the word was drawn from.
	Word       string     // The solution (uppercase A–Z).
	MaxWrong   int        // Wrong guesses that lose the round.

	revealed []bool
	used     map[rune]struct{}
	wrong    int
	hints    int
}

// NewRound starts a round for word. The word is normalised to uppercase.
func NewRound(d Difficulty, word string) *Round {
	word = strings.ToUpper(strings.TrimSpace(word))
	return &Round{
		ID:         uuid.NewString(),
		Difficulty: d,
		Word:       word,
		MaxWrong:   d.MaxWrong(),
		revealed:   make([]bool, len(word)),
		used:       make(map[rune]struct{}, 26),
	}
}

// Guess applies a letter guess and returns the cues it produced.
func (r *Round) Guess(letter rune) []Cue {
	if r.Finished() {
		return nil
	}
	letter, ok := normalize(letter)
	if !ok {
		return nil
	}
	if _, seen := r.used[letter]; seen {
		return nil
	}
	r.used[letter] = struct{}{}

	var cues []Cue
	if r.reveal(letter) > 0 {
		cues = append(cues, CueCorrect)
	} else {
		r.wrong++
		cues = append(cues, CueWrong)
	}
	return r.appendOutcome(cues)
}

// Hint reveals every occurrence of one hidden letter, chosen uniformly among
// the hidden positions. It is a no-op when the round is over, the hints are
// spent, or nothing is left to reveal.
func (r *Round) Hint(rng Rand) []Cue {
	if r.Finished() || r.hints >= MaxHints {
		return nil
	}
	hidden := r.hiddenPositions()
	if len(hidden) == 0 {
		return nil
	}
	pos := hidden[rng.IntN(len(hidden))]
	r.reveal(rune(r.Word[pos]))
	r.hints++
	return r.appendOutcome([]Cue{CueHint})
}

// Outcome derives the round state from the mask and the wrong-guess count.
func (r *Round) Outcome() Outcome {
	if r.complete() {
		return Won
	}
	if r.wrong >= r.MaxWrong {
		return Lost
	}
	return InProgress
}

// Finished reports whether the round is won or lost.
func (r *Round) Finished() bool { return r.Outcome() != InProgress }

// Mask returns the word with hidden positions replaced by Placeholder.
func (r *Round) Mask() []rune {
	out := make([]rune, len(r.Word))
	for i, c := range r.Word {
		if r.revealed[i] {
			out[i] = c
		} else {
			out[i] = Placeholder
		}
	}
	return out
}

// Used returns the guessed letters in alphabetical order.
func (r *Round) Used() []rune {
	out := make([]rune, 0, len(r.used))
	for l := range r.used {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsUsed reports whether letter has been guessed this round.
func (r *Round) IsUsed(letter rune) bool {
	letter, ok := normalize(letter)
	if !ok {
		return false
	}
	_, seen := r.used[letter]
	return seen
}

// Wrong is the number of incorrect guesses so far.
func (r *Round) Wrong() int { return r.wrong }

// HintsUsed is the number of hints consumed this round.
func (r *Round) HintsUsed() int { return r.hints }

// HintsRemaining is MaxHints minus the hints consumed.
func (r *Round) HintsRemaining() int { return MaxHints - r.hints }

// reveal marks every position holding letter and returns how many there were.
func (r *Round) reveal(letter rune) int {
	n := 0
	for i, c := range r.Word {
		if c == letter {
			r.revealed[i] = true
			n++
		}
	}
	return n
}

func (r *Round) hiddenPositions() []int {
	var out []int
	for i, ok := range r.revealed {
		if !ok {
			out = append(out, i)
		}
	}
	return out
}

func (r *Round) complete() bool {
	for _, ok := range r.revealed {
		if !ok {
			return false
		}
	}
	return true
}

func (r *Round) appendOutcome(cues []Cue) []Cue {
	switch r.Outcome() {
	case Won:
		cues = append(cues, CueWon)
	case Lost:
		cues = append(cues, CueLost)
	}
	return cues
}

// normalize uppercases letter and rejects anything outside A–Z.
func normalize(letter rune) (rune, bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	return letter, letter >= 'A' && letter <= 'Z'
}
