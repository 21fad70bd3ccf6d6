package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fruits/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the same way "play" does and print it as
YAML. The output is a valid starting point for --config.

Search order:
  --config <path>
  ~/.fruits/configs/fruits.yaml
  ./configs/fruits.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFruits(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = os.Stdout.Write(data)
	return err
}
