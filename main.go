package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/tui"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hangman:", err)
		return 2
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hangman:", err)
		return 2
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Error().Msg("stdin is not a terminal")
		fmt.Fprintln(os.Stderr, "hangman: stdin is not a terminal")
		return 1
	}

	bank, err := words.Default()
	if err != nil {
		log.Error().Err(err).Msg("failed to load word lists")
		fmt.Fprintln(os.Stderr, "hangman:", err)
		return 1
	}

	st := store.Open(cfg)
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	score, err := play(ctx, cfg, bank, st)
	if err != nil {
		log.Error().Err(err).Msg("session ended with error")
		fmt.Fprintln(os.Stderr, "hangman:", err)
		return 1
	}
	fmt.Printf("Wins: %d  Losses: %d\n", score.Wins, score.Losses)
	return 0
}

// play owns the terminal for the duration of the session.
func play(ctx context.Context, cfg config.Config, bank *words.Bank, st store.Store) (game.Score, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return game.Score{}, fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.Score{}, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// A signal turns into a close request on the blocked PollEvent.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	ui := tui.New(screen, cfg.Sound)
	return session.Run(ctx, session.Options{
		Store:     st,
		Bank:      bank,
		Rand:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		Input:     ui,
		Presenter: ui,
	})
}

// setupLogging points the global zerolog logger at LOG_FILE (or nowhere:
// the terminal belongs to the UI) and applies LOG_LEVEL.
func setupLogging(cfg config.Config) (func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}
