// internal/session/session.go
//
// Session state machine wrapping rounds:
//
//   choosing ──select──▶ playing ──won/lost──▶ resolved ──restart──▶ choosing
//                                                 │  ▲
//                                            quit │  │ decline
//                                                 ▼  │
//                                            confirm_quit ──yes──▶ terminated
//
// A close request terminates from any phase. The score is recorded exactly
// once, on the playing → resolved transition.

package session

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

// Phase is the session-level state.
type Phase string

const (
	PhaseChoosing    Phase = "choosing"
	PhasePlaying     Phase = "playing"
	PhaseResolved    Phase = "resolved"
	PhaseConfirmQuit Phase = "confirm_quit"
	PhaseTerminated  Phase = "terminated"
)

// Snapshot is everything the presenter needs to draw one frame.
type Snapshot struct {
	Phase          Phase
	Difficulty     game.Difficulty // empty while choosing
	Mask           []rune
	Used           []rune
	Wrong          int
	MaxWrong       int
	HintsRemaining int
	Outcome        game.Outcome
	Score          game.Score
	Answer         string // set once the round is resolved
}

// Session owns the score and the current round.
type Session struct {
	bank  *words.Bank
	rng   game.Rand
	phase Phase
	round *game.Round
	score game.Score
}

// New starts a session at the difficulty menu with the loaded score.
func New(bank *words.Bank, rng game.Rand, score game.Score) *Session {
	return &Session{bank: bank, rng: rng, phase: PhaseChoosing, score: score}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the running totals.
func (s *Session) Score() game.Score { return s.score }

// Round returns the current round, nil while choosing.
func (s *Session) Round() *game.Round { return s.round }

// Handle applies one input event. It returns the cues produced and whether
// the visible state changed.
func (s *Session) Handle(ev Event) ([]game.Cue, bool) {
	act := Dispatch(s.phase, ev)
	switch act.Kind {
	case ActSelect:
		s.startRound(act.Difficulty)
		return nil, true
	case ActGuess:
		cues := s.round.Guess(act.Letter)
		s.settle()
		return cues, len(cues) > 0
	case ActHint:
		cues := s.round.Hint(s.rng)
		s.settle()
		return cues, len(cues) > 0
	case ActRestart:
		s.round = nil
		s.phase = PhaseChoosing
		return nil, true
	case ActAskQuit:
		s.phase = PhaseConfirmQuit
		return nil, true
	case ActDeclineQuit:
		s.phase = PhaseResolved
		return nil, true
	case ActTerminate:
		s.phase = PhaseTerminated
		return nil, true
	}
	return nil, false
}

// Snapshot captures the state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Phase: s.phase, Score: s.score, Outcome: game.InProgress}
	r := s.round
	if r == nil {
		return snap
	}
	snap.Difficulty = r.Difficulty
	snap.Mask = r.Mask()
	snap.Used = r.Used()
	snap.Wrong = r.Wrong()
	snap.MaxWrong = r.MaxWrong
	snap.HintsRemaining = r.HintsRemaining()
	snap.Outcome = r.Outcome()
	if r.Finished() {
		snap.Answer = r.Word
	}
	return snap
}

func (s *Session) startRound(d game.Difficulty) {
	s.round = game.NewRound(d, s.bank.Pick(d, s.rng))
	s.phase = PhasePlaying
	log.Info().Str("round", s.round.ID).Str("difficulty", string(d)).Int("letters", len(s.round.Word)).Msg("round started")
	log.Debug().Str("round", s.round.ID).Str("word", s.round.Word).Msg("word drawn")
}

// settle moves a finished round to resolved and records its outcome.
func (s *Session) settle() {
	if s.phase != PhasePlaying || !s.round.Finished() {
		return
	}
	o := s.round.Outcome()
	s.score.Record(o)
	s.phase = PhaseResolved
	log.Info().
		Str("round", s.round.ID).
		Str("outcome", string(o)).
		Int("wrong", s.round.Wrong()).
		Int("hints", s.round.HintsUsed()).
		Int("wins", s.score.Wins).
		Int("losses", s.score.Losses).
		Msg("round resolved")
}
