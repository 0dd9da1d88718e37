package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/session"
)

type theme struct {
	text    tcell.Style
	easy    tcell.Style
	medium  tcell.Style
	hard    tcell.Style
	used    tcell.Style
	remain  tcell.Style
	hint    tcell.Style
	win     tcell.Style
	lose    tcell.Style
	keyFree tcell.Style
	keyUsed tcell.Style
}

func defaultTheme() theme {
	st := tcell.StyleDefault
	return theme{
		text:    st,
		easy:    st.Foreground(tcell.ColorGreen),
		medium:  st.Foreground(tcell.ColorYellow),
		hard:    st.Foreground(tcell.ColorRed),
		used:    st.Foreground(tcell.ColorRed),
		remain:  st.Foreground(tcell.ColorGreen),
		hint:    st.Foreground(tcell.ColorBlue),
		win:     st.Foreground(tcell.ColorYellow).Bold(true),
		lose:    st.Foreground(tcell.ColorRed).Bold(true),
		keyFree: st.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
		keyUsed: st.Foreground(tcell.ColorBlack).Background(tcell.ColorRed),
	}
}

// Screen rows.
const (
	rowUsed     = 0
	rowRemain   = 1
	rowHint     = 2
	rowGallows  = 4
	rowStatus   = 12
	rowMask     = 13
	rowResult   = 15
	rowPrompt   = 16
	rowKeyboard = 18
)

var gallows = []string{
	"  +---+",
	"  |   |",
	"      |",
	"      |",
	"      |",
	"      |",
	"=========",
}

// bodyParts in the order they appear, one per wrong guess:
// head, body, left arm, right arm, left leg, right leg.
var bodyParts = []struct {
	dx, dy int
	ch     rune
}{
	{2, 2, 'O'},
	{2, 3, '|'},
	{1, 3, '/'},
	{3, 3, '\\'},
	{1, 4, '/'},
	{3, 4, '\\'},
}

func (u *UI) drawMenu(snap session.Snapshot) {
	u.center(3, "Select Difficulty", u.theme.text.Bold(true))
	u.center(6, "1 - Easy", u.theme.easy)
	u.center(8, "2 - Medium", u.theme.medium)
	u.center(10, "3 - Hard", u.theme.hard)
	u.center(14, scoreLine(snap.Score), u.theme.text)
}

func (u *UI) drawConfirm() {
	_, h := u.screen.Size()
	u.center(h/2-1, "Are you sure you want to quit? (Y/N)", u.theme.text.Bold(true))
}

func (u *UI) drawRound(snap session.Snapshot) {
	w, _ := u.screen.Size()
	t := u.theme

	drawText(u.screen, 1, rowUsed, "Used: "+spaced(snap.Used), t.used)
	score := scoreLine(snap.Score)
	drawText(u.screen, w-len(score)-1, rowUsed, score, t.text)
	drawText(u.screen, 1, rowRemain, fmt.Sprintf("Remaining Guesses: %d", snap.MaxWrong-snap.Wrong), t.remain)
	drawText(u.screen, 1, rowHint, fmt.Sprintf("Press 0 for hint (%d left)", snap.HintsRemaining), t.hint)
	drawText(u.screen, w-len(snap.Difficulty.Title())-1, rowRemain, snap.Difficulty.Title(), t.text)

	u.drawGallows(4, rowGallows, snap.Wrong)

	if u.status != "" {
		u.center(rowStatus, u.status, t.text)
	}
	u.center(rowMask, spaced(snap.Mask), t.text.Bold(true))

	switch snap.Outcome {
	case game.Won:
		u.center(rowResult, "You Win!", t.win)
	case game.Lost:
		u.center(rowResult, "You Lose! Word: "+snap.Answer, t.lose)
	}
	if snap.Phase == session.PhaseResolved {
		u.center(rowPrompt, "Press R to restart or Q to quit", t.text)
	}

	u.drawKeyboard(rowKeyboard, snap.Used)
}

func (u *UI) drawGallows(x, y, wrong int) {
	for i, line := range gallows {
		drawText(u.screen, x, y+i, line, u.theme.text)
	}
	for i := 0; i < wrong && i < len(bodyParts); i++ {
		p := bodyParts[i]
		u.screen.SetContent(x+p.dx, y+p.dy, p.ch, nil, u.theme.text)
	}
}

// drawKeyboard draws A–M and N–Z on two rows, used letters highlighted.
func (u *UI) drawKeyboard(y int, used []rune) {
	isUsed := make(map[rune]bool, len(used))
	for _, r := range used {
		isUsed[r] = true
	}
	w, _ := u.screen.Size()
	const spacing = 4
	x0 := (w - 13*spacing) / 2
	if x0 < 0 {
		x0 = 0
	}
	for i := 0; i < 26; i++ {
		l := rune('A' + i)
		st := u.theme.keyFree
		if isUsed[l] {
			st = u.theme.keyUsed
		}
		x := x0 + (i%13)*spacing
		row := y + (i/13)*2
		drawText(u.screen, x, row, " "+string(l)+" ", st)
	}
}

func (u *UI) center(y int, text string, st tcell.Style) {
	w, _ := u.screen.Size()
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	drawText(u.screen, x, y, text, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	col := 0
	for _, ch := range text {
		s.SetContent(x+col, y, ch, nil, st)
		col++
	}
}

func spaced(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func scoreLine(s game.Score) string {
	return fmt.Sprintf("Wins: %s  Losses: %s", humanize.Comma(int64(s.Wins)), humanize.Comma(int64(s.Losses)))
}
