// fruits is a terminal fruit-catching game.
//
// Usage:
//
//	fruits                   - Play in the raw terminal (same as "fruits play")
//	fruits play              - Play in the raw terminal
//	fruits tea               - Play through the Bubble Tea front end
//	fruits list              - List available games
//	fruits config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible lanes
//	--config <path>     - Load a custom config YAML
//	--log-level <level> - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write diagnostics to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-fruits/internal/games/fruits"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruits",
	Short: "Fruit Catch - catch falling fruit in your terminal",
	Long: `Fruit Catch drops one fruit at a time down seven lanes. Slide the
basket under it before it reaches the bottom. Every catch scores a point
and speeds the game up; a miss ends it.

Controls:
  a   - Move basket left
  d   - Move basket right
  q   - Quit

Examples:
  fruits
  fruits play --seed 42
  fruits tea
  fruits config > my-fruits.yaml
  fruits play --config ./my-fruits.yaml --log-level debug --log-file fruits.log`,
	SilenceUsage: true,
	Run:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(teaCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the diagnostic logger from the global flags.
// The returned closer releases the log file, if one was opened.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fruits",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
