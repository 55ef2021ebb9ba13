package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/logging"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after the config file search
and the difficulty preset, as YAML. Use the output as a starting point for
~/.flappycat/config.yaml.

Examples:
  flappycat config
  flappycat config --difficulty hard
  flappycat config --defaults > ~/.flappycat/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	if flagDefaults {
		logger.Debug("printing built-in defaults")
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Debug("resolved config",
		"path", flagConfig,
		"difficulty", flagDifficulty,
		"progression", cfg.Difficulty.Progression.Type,
	)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
