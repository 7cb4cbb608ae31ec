// Command portfolio-tui shows the portfolio in a terminal. Move the mouse
// over the constellation to reveal the cards; Esc, q or Ctrl-C quits.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gdamore/tcell/v2"

	"github.com/dhruvywuvy/ursa-minor/internal/config"
	"github.com/dhruvywuvy/ursa-minor/internal/logging"
	"github.com/dhruvywuvy/ursa-minor/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log, err := logging.New(cfg.LogLevel, logging.Format(cfg.LogFormat), out)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	app := tui.New(screen,
		tui.WithLogger(log),
		tui.WithFrameInterval(cfg.FrameInterval()),
		tui.WithSeed(cfg.Seed),
	)
	log.Info().Int("fps", cfg.FrameRate).Msg("terminal session started")
	if err := app.Run(ctx); err != nil {
		return err
	}
	log.Info().Msg("terminal session ended")
	return nil
}
