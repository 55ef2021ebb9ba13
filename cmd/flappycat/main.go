// flappycat is a Flappy-style arcade game for the terminal.
//
// Usage:
//
//	flappycat                - Play (same as "flappycat play")
//	flappycat play           - Play a run
//	flappycat config         - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>            - Set frame rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Load a custom config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-level <level>     - debug, info, warn or error (default: info)
//	--log-file <path>       - Append logs to a file (default: discarded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappycat/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappycat",
	Short: "Flappycat - guide the cat through the pipes",
	Long: `Flappycat is a terminal arcade game. The cat falls under gravity;
flap to climb and slip through the gaps of the pipes drifting in from the
right. Gaps narrow and pipes crowd together as the score grows.

Available commands:
  play     - Play a run (default)
  config   - Print the effective configuration

Examples:
  flappycat
  flappycat play --difficulty hard
  flappycat play --config ./my-flappy.yaml --log-file flappycat.log
  flappycat config --difficulty fixed`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, applies the difficulty preset and
// validates the result.
func loadConfig() (config.FlappyConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, err
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	config.ApplyFlappyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, err
	}
	return cfg, nil
}
