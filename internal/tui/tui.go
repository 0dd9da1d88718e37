// Package tui renders game snapshots to a terminal with tcell and turns
// terminal key events into session input events.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/session"
)

// UI is both the presenter and the input source of a session.
type UI struct {
	screen tcell.Screen
	sound  bool
	theme  theme
	status string // feedback for the last cue, shown on the next frame
}

// New wraps an initialised screen. With sound off, cues never ring the bell.
func New(screen tcell.Screen, sound bool) *UI {
	return &UI{screen: screen, sound: sound, theme: defaultTheme()}
}

// Poll blocks for the next event the session cares about.
func (u *UI) Poll() session.Event {
	for {
		switch e := u.screen.PollEvent().(type) {
		case nil:
			// Screen finalised.
			return session.Close()
		case *tcell.EventInterrupt:
			return session.Close()
		case *tcell.EventResize:
			u.screen.Sync()
			return session.Event{Kind: session.Redraw}
		case *tcell.EventKey:
			switch e.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return session.Close()
			case tcell.KeyRune:
				return session.Key(e.Rune())
			}
		}
	}
}

// Cue rings the bell for bad news and hints, and sets the status line.
func (u *UI) Cue(c game.Cue) {
	switch c {
	case game.CueCorrect:
		u.status = "Correct!"
	case game.CueWrong:
		u.status = "Wrong!"
	case game.CueHint:
		u.status = "Hint used"
	case game.CueWon, game.CueLost:
		u.status = ""
	}
	if !u.sound {
		return
	}
	switch c {
	case game.CueWrong, game.CueLost, game.CueHint:
		_ = u.screen.Beep()
	}
}

// Render draws one frame for snap.
func (u *UI) Render(snap session.Snapshot) {
	s := u.screen
	s.Clear()
	switch snap.Phase {
	case session.PhaseChoosing:
		u.drawMenu(snap)
	case session.PhasePlaying, session.PhaseResolved:
		u.drawRound(snap)
	case session.PhaseConfirmQuit:
		u.drawConfirm()
	}
	u.status = ""
	s.Show()
}
