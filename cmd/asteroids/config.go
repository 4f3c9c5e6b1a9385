package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/asteroids-arcade/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
search order and --difficulty are applied.

Config files are searched in this order:
  --config <path>
  ~/.arcade/configs/asteroids.yaml
  ./configs/asteroids.yaml
  built-in defaults

Examples:
  asteroids config
  asteroids config --difficulty hard
  asteroids config --defaults > ~/.arcade/configs/asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
