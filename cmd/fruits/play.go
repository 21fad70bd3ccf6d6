package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
	"github.com/vovakirdan/tui-fruits/internal/platform/ansi"
	"github.com/vovakirdan/tui-fruits/internal/platform/loop"
	"github.com/vovakirdan/tui-fruits/internal/platform/rawterm"
	"github.com/vovakirdan/tui-fruits/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the raw terminal",
	Long: `Put the terminal into raw mode and play with direct ANSI drawing.
The window must be at least 20 rows by 38 columns. The game defaults to
"fruits"; see "fruits list".

Examples:
  fruits play
  fruits play fruits --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadFruits(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := createGame(args, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fg, ok := game.(*fruits.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q cannot run in the raw terminal, try 'fruits tea %s'\n", game.ID(), game.ID())
		os.Exit(1)
	}

	code := playRaw(fg, cfg, logger)
	//nolint:errcheck // Best-effort close, the exit code is already decided
	closer.Close()
	os.Exit(code)
}

// playRaw runs one session and returns the process exit code.
func playRaw(game *fruits.Game, cfg config.FruitsConfig, logger *log.Logger) int {
	game.Reset(core.RuntimeConfig{Seed: flagSeed})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, err := rawterm.EnterRawMode(os.Stdin, os.Stdout, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	//nolint:errcheck // Restore is idempotent; Play reports its own restore error
	defer sess.Close()
	if size, sizeErr := sess.Size(); sizeErr == nil {
		logger.Debug("kernel window size", "size", size)
	}

	out := bufio.NewWriter(ansi.NewRetryWriter(os.Stdout))
	screen := ansi.NewRenderer(out)

	outcome, err := loop.Play(ctx, sess, screen, game,
		loop.WithLogger(logger),
		loop.WithPollSleep(cfg.Loop.PollSleep()),
	)
	if werr := screen.Err(); werr != nil {
		logger.Warn("screen output failed", "error", werr)
	}
	if errors.Is(err, loop.ErrTerminalTooSmall) {
		logger.Info("terminal too small", "error", err)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("session ended", "phase", outcome.Phase, "score", outcome.Score, "ticks", outcome.Ticks)
	return 0
}

// defaultGameID is played when no game is named on the command line.
const defaultGameID = "fruits"

// createGame builds the game named in args through the registry.
func createGame(args []string, cfg config.FruitsConfig) (registry.Game, error) {
	id := defaultGameID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown game %q, run 'fruits list' to see available games", id)
	}

	fruits.SetConfig(cfg)
	return registry.Create(id)
}
