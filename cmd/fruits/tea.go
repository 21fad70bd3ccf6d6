package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
	"github.com/vovakirdan/tui-fruits/internal/platform/loop"
	"github.com/vovakirdan/tui-fruits/internal/platform/tui"
	"github.com/vovakirdan/tui-fruits/internal/registry"
)

var teaCmd = &cobra.Command{
	Use:   "tea [game]",
	Short: "Play through the Bubble Tea front end",
	Long: `Play the same game in an alternate screen driven by Bubble Tea.
Keys and speed-up are identical to "fruits play".

Examples:
  fruits tea
  fruits tea fruits --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTea,
}

func runTea(cmd *cobra.Command, args []string) {
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

	code := playTea(game, logger)
	//nolint:errcheck // Best-effort close, the exit code is already decided
	closer.Close()
	os.Exit(code)
}

// playTea runs one Bubble Tea session and returns the process exit code.
func playTea(game registry.Game, logger *log.Logger) int {
	rc := core.DefaultConfig()
	rc.Seed = flagSeed

	// Get terminal size; one row is left for the help line
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if sizeErr := loop.CheckSize(core.NewPosition(h, w)); sizeErr != nil {
			logger.Info("terminal too small", "error", sizeErr)
			fmt.Println(loop.TooSmallMessage)
			return 1
		}
		rc.ScreenW, rc.ScreenH = w, h-1
	}

	state, err := tui.Run(game, rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return 1
	}

	logger.Info("session ended", "phase", state.Phase, "score", state.Score)
	fmt.Println(fruits.Score{Value: state.Score}.FinalLabel())
	return 0
}
