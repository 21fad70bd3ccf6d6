package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Cleanup(func() { flagLogLevel, flagLogFile = "warn", "" })

	tests := []struct {
		level string
		want  log.Level
		bad   bool
	}{
		{"debug", log.DebugLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			flagLogLevel, flagLogFile = tc.level, ""
			logger, closer, err := newLogger()
			if tc.bad {
				if err == nil {
					t.Fatal("expected error for unknown level")
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger: %v", err)
			}
			defer closer.Close()
			if logger.GetLevel() != tc.want {
				t.Errorf("level = %v, expected %v", logger.GetLevel(), tc.want)
			}
		})
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruits.log")
	flagLogLevel, flagLogFile = "info", path
	t.Cleanup(func() { flagLogLevel, flagLogFile = "warn", "" })

	logger, closer, err := newLogger()
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("caught", "score", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, "fruits") || !strings.Contains(line, "caught") || !strings.Contains(line, "score=1") {
		t.Errorf("log line = %q", line)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"play", "tea", "list", "config"} {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCreateGame(t *testing.T) {
	cfg := config.DefaultFruitsConfig()
	cfg.Tick.InitialMS = 120
	t.Cleanup(func() { fruits.SetConfig(config.DefaultFruitsConfig()) })

	game, err := createGame(nil, cfg)
	if err != nil {
		t.Fatalf("createGame: %v", err)
	}
	if game.ID() != defaultGameID {
		t.Errorf("ID = %q, expected %q", game.ID(), defaultGameID)
	}
	game.Reset(core.RuntimeConfig{Seed: 1})
	if got := game.State().Interval.Milliseconds(); got != 120 {
		t.Errorf("interval = %dms, expected the loaded 120ms", got)
	}

	if _, err := createGame([]string{"fruits"}, cfg); err != nil {
		t.Errorf("createGame(fruits): %v", err)
	}
	if _, err := createGame([]string{"tetris"}, cfg); err == nil || !strings.Contains(err.Error(), "fruits list") {
		t.Errorf("unknown game error = %v", err)
	}
}
