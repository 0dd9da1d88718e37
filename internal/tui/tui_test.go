package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/session"
)

func newTestUI(t *testing.T) (*UI, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return New(s, true), s
}

// screenText returns every row of the screen joined by newlines.
func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// pollInput skips redraw requests caused by the simulated terminal.
func pollInput(u *UI) session.Event {
	for {
		ev := u.Poll()
		if ev.Kind != session.Redraw {
			return ev
		}
	}
}

func TestRenderMenu(t *testing.T) {
	u, s := newTestUI(t)
	u.Render(session.Snapshot{Phase: session.PhaseChoosing, Score: game.Score{Wins: 1234, Losses: 5}})

	text := screenText(s)
	assert.Contains(t, text, "Select Difficulty")
	assert.Contains(t, text, "1 - Easy")
	assert.Contains(t, text, "2 - Medium")
	assert.Contains(t, text, "3 - Hard")
	assert.Contains(t, text, "Wins: 1,234  Losses: 5")
}

func TestRenderRound(t *testing.T) {
	u, s := newTestUI(t)
	u.Cue(game.CueWrong)
	u.Render(session.Snapshot{
		Phase:          session.PhasePlaying,
		Difficulty:     game.Easy,
		Mask:           []rune("C_T"),
		Used:           []rune("CTX"),
		Wrong:          1,
		MaxWrong:       6,
		HintsRemaining: 2,
		Outcome:        game.InProgress,
	})

	text := screenText(s)
	assert.Contains(t, text, "Used: C T X")
	assert.Contains(t, text, "Remaining Guesses: 5")
	assert.Contains(t, text, "Press 0 for hint (2 left)")
	assert.Contains(t, text, "C _ T")
	assert.Contains(t, text, "Wrong!")
	assert.Contains(t, text, "Easy")
	assert.NotContains(t, text, "Press R to restart")

	// Head only after one wrong guess.
	r, _, _, _ := s.GetContent(4+bodyParts[0].dx, rowGallows+bodyParts[0].dy)
	assert.Equal(t, 'O', r)
	r, _, _, _ = s.GetContent(4+bodyParts[1].dx, rowGallows+bodyParts[1].dy)
	assert.NotEqual(t, '|', r)

	// The status line is shown once.
	u.Render(session.Snapshot{Phase: session.PhasePlaying, Mask: []rune("C_T"), MaxWrong: 6})
	assert.NotContains(t, screenText(s), "Wrong!")
}

func TestRenderResolved(t *testing.T) {
	u, s := newTestUI(t)
	u.Render(session.Snapshot{
		Phase:    session.PhaseResolved,
		Mask:     []rune("___"),
		Wrong:    6,
		MaxWrong: 6,
		Outcome:  game.Lost,
		Answer:   "DOG",
	})
	text := screenText(s)
	assert.Contains(t, text, "You Lose! Word: DOG")
	assert.Contains(t, text, "Press R to restart or Q to quit")

	u.Render(session.Snapshot{Phase: session.PhaseResolved, Mask: []rune("CAT"), MaxWrong: 6, Outcome: game.Won, Answer: "CAT"})
	assert.Contains(t, screenText(s), "You Win!")
}

func TestRenderConfirm(t *testing.T) {
	u, s := newTestUI(t)
	u.Render(session.Snapshot{Phase: session.PhaseConfirmQuit})
	assert.Contains(t, screenText(s), "Are you sure you want to quit? (Y/N)")
}

func TestPollMapsKeys(t *testing.T) {
	u, s := newTestUI(t)

	s.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	assert.Equal(t, session.Key('a'), pollInput(u))

	// Non-rune keys other than Esc/Ctrl+C are skipped.
	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, '0', tcell.ModNone)
	assert.Equal(t, session.Key('0'), pollInput(u))

	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.Equal(t, session.Close(), pollInput(u))

	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)
	assert.Equal(t, session.Close(), pollInput(u))

	require.NoError(t, s.PostEvent(tcell.NewEventInterrupt(nil)))
	assert.Equal(t, session.Close(), pollInput(u))
}

func TestCueWithoutSound(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()

	u := New(s, false)
	for _, c := range []game.Cue{game.CueCorrect, game.CueWrong, game.CueHint, game.CueWon, game.CueLost} {
		u.Cue(c)
	}
	assert.Empty(t, u.status)
}
