// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Difficulty: word tier selected on the menu.
//   - Outcome: derived state of a round (in progress / won / lost).
//   - Cue: discrete notification emitted by transitions for the presenter.
//   - Score: win/loss totals carried across rounds and sessions.

package game

// Difficulty selects the word list and the wrong-guess allowance.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the tiers in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

const (
	// DefaultMaxWrong is the wrong-guess allowance, shared by every tier.
	DefaultMaxWrong = 6
	// MaxHints is the number of hints available per round.
	MaxHints = 2
)

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// MaxWrong returns the number of wrong guesses that loses a round.
func (d Difficulty) MaxWrong() int { return DefaultMaxWrong }

// Title is the capitalised label used on screen and in logs.
func (d Difficulty) Title() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return ""
}

// Outcome is the coarse state of a round.
type Outcome string

const (
	InProgress Outcome = "in_progress"
	Won        Outcome = "won"
	Lost       Outcome = "lost"
)

// Cue is emitted by a transition so the presentation layer can react
// (sound, flashes) without the engine knowing about it.
type Cue string

const (
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
	CueHint    Cue = "hint"
	CueWon     Cue = "won"
	CueLost    Cue = "lost"
)

// Score holds persisted win/loss totals.
type Score struct {
	Wins   int
	Losses int
}

// Record counts a resolved round. In-progress outcomes are ignored.
func (s *Score) Record(o Outcome) {
	switch o {
	case Won:
		s.Wins++
	case Lost:
		s.Losses++
	}
}

// Total is the number of resolved rounds.
func (s Score) Total() int { return s.Wins + s.Losses }
