// internal/session/dispatcher.go
//
// Input dispatcher: maps a discrete input event to an action, given the
// phase the session is in. It holds no state.
//
// Key map:
//   any phase      close request → terminate
//   choosing       1 / 2 / 3     → easy / medium / hard
//   playing        A–Z (any case) → guess,  0 → hint
//   resolved       R → restart,  Q → ask to quit
//   confirm_quit   Y → terminate, N → back to resolved

package session

import "github.com/robalobadob/hangman/internal/game"

// EventKind distinguishes input events.
type EventKind int

const (
	KeyPressed EventKind = iota
	CloseRequested
	// Redraw asks for a re-render without changing state (terminal resize).
	Redraw
)

// Event is one polled input.
type Event struct {
	Kind EventKind
	Key  rune // set for KeyPressed
}

// Key builds a KeyPressed event.
func Key(r rune) Event { return Event{Kind: KeyPressed, Key: r} }

// Close builds a CloseRequested event.
func Close() Event { return Event{Kind: CloseRequested} }

// ActionKind is the transition an event maps to.
type ActionKind int

const (
	ActNone ActionKind = iota
	ActSelect
	ActGuess
	ActHint
	ActRestart
	ActAskQuit
	ActDeclineQuit
	ActTerminate
)

// Action is a dispatched transition with its argument, if any.
type Action struct {
	Kind       ActionKind
	Difficulty game.Difficulty // ActSelect
	Letter     rune            // ActGuess
}

// HintKey requests a hint while playing.
const HintKey = '0'

// Dispatch maps ev to an action for phase.
func Dispatch(phase Phase, ev Event) Action {
	switch ev.Kind {
	case CloseRequested:
		return Action{Kind: ActTerminate}
	case KeyPressed:
	default:
		return Action{}
	}

	k := ev.Key
	switch phase {
	case PhaseChoosing:
		switch k {
		case '1':
			return Action{Kind: ActSelect, Difficulty: game.Easy}
		case '2':
			return Action{Kind: ActSelect, Difficulty: game.Medium}
		case '3':
			return Action{Kind: ActSelect, Difficulty: game.Hard}
		}
	case PhasePlaying:
		if k == HintKey {
			return Action{Kind: ActHint}
		}
		if isLetter(k) {
			return Action{Kind: ActGuess, Letter: k}
		}
	case PhaseResolved:
		switch k {
		case 'r', 'R':
			return Action{Kind: ActRestart}
		case 'q', 'Q':
			return Action{Kind: ActAskQuit}
		}
	case PhaseConfirmQuit:
		switch k {
		case 'y', 'Y':
			return Action{Kind: ActTerminate}
		case 'n', 'N':
			return Action{Kind: ActDeclineQuit}
		}
	}
	return Action{}
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
