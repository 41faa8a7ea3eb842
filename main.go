package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/hersh/blockdrop/internal/audio"
	"github.com/hersh/blockdrop/internal/config"
	"github.com/hersh/blockdrop/internal/game"
	"github.com/hersh/blockdrop/internal/spectate"
	"github.com/hersh/blockdrop/internal/tcellui"
	"github.com/hersh/blockdrop/internal/tui"
)

// This is the game. To watch a running game that was started with -serve:
//   go run ./cmd/watch --server ws://localhost:8080/ws

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logFile, err := tea.LogToFile(cfg.LogFile, "blockdrop")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	slog.Info("starting", "ui", cfg.UI, "randomizer", cfg.Randomizer, "seed", cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := game.NewLoop(game.NewGameState(newRandomizer(cfg)))

	music := audio.NewPlayer()
	if err := music.Init(); err != nil {
		// the game is playable without sound
		slog.Warn("audio unavailable", "err", err)
	}
	defer music.Close()
	if cfg.Sound {
		music.Play()
	}

	var publisher tui.Publisher
	if cfg.Serve != "" {
		hub := spectate.NewHub()
		publisher = hub
		go func() {
			if err := hub.Serve(ctx, cfg.Serve); err != nil {
				slog.Error("spectator server stopped", "err", err)
			}
		}()
	}

	if cfg.UI == config.UITcell {
		return runTcell(ctx, loop, music, publisher)
	}
	return runBubbletea(ctx, loop, music, publisher)
}

func newRandomizer(cfg config.Config) game.Randomizer {
	if cfg.Randomizer == config.RandomizerBag {
		return game.NewBagRandomizer(cfg.Seed)
	}
	return game.NewUniformRandomizer(cfg.Seed)
}

func runBubbletea(ctx context.Context, loop *game.Loop, music *audio.Player, publisher tui.Publisher) error {
	p := tea.NewProgram(
		tui.NewModel(loop, music, publisher),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func runTcell(ctx context.Context, loop *game.Loop, music *audio.Player, publisher tui.Publisher) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return tcellui.Run(ctx, screen, loop, tcellui.Options{
		Music:     music,
		Publisher: publisher,
	})
}
