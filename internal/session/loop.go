// internal/session/loop.go
//
// Top-level driver: load score → menu/round/outcome loop → save score.
// The presenter is redrawn only when an event changed the visible state.

package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// Presenter draws snapshots and reacts to cues.
type Presenter interface {
	Render(Snapshot)
	Cue(game.Cue)
}

// Input yields the next input event, blocking until one is available.
type Input interface {
	Poll() Event
}

// Options wires a Run.
type Options struct {
	Store     store.Store
	Bank      *words.Bank
	Rand      game.Rand
	Input     Input
	Presenter Presenter
}

// Run plays until the player quits or ctx is cancelled, then saves the score
// once. It returns the final score and any save error.
func Run(ctx context.Context, opts Options) (game.Score, error) {
	loaded := opts.Store.Load(ctx)
	log.Info().Int("wins", loaded.Wins).Int("losses", loaded.Losses).Msg("score loaded")

	s := New(opts.Bank, opts.Rand, loaded)
	opts.Presenter.Render(s.Snapshot())

	for s.Phase() != PhaseTerminated && ctx.Err() == nil {
		ev := opts.Input.Poll()
		cues, changed := s.Handle(ev)
		for _, c := range cues {
			opts.Presenter.Cue(c)
		}
		if changed || ev.Kind == Redraw {
			opts.Presenter.Render(s.Snapshot())
		}
	}

	final := s.Score()
	if err := opts.Store.Save(context.WithoutCancel(ctx), final); err != nil {
		return final, fmt.Errorf("save score: %w", err)
	}
	log.Info().Int("wins", final.Wins).Int("losses", final.Losses).Msg("score saved")
	return final, nil
}
