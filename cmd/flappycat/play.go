package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappycat/internal/audio"
	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
	"github.com/vovakirdan/flappycat/internal/logging"
	"github.com/vovakirdan/flappycat/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run. The game waits for the first flap.

Controls:
  Space/Up/W - Start / Flap
  R          - Restart
  Ctrl+S     - Save a screenshot to ~/.flappycat/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  flappycat play
  flappycat play --difficulty easy
  flappycat play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to a file or nowhere
	logger, closeLog, err := logging.OpenFile(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing left to report to

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	driver := newAudioDriver(cfg.Audio, logger)
	defer driver.Close()

	logger.Info("starting",
		"fps", rc.TickRate,
		"seed", rc.Seed,
		"difficulty", flagDifficulty,
		"size", fmt.Sprintf("%dx%d", width, height),
	)

	if err := tui.Run(cfg, rc, driver, logger); err != nil {
		logger.Error("game exited", "err", err)
		return err
	}
	logger.Info("bye")
	return nil
}

// newAudioDriver opens the sound device, falling back to silence when audio is
// disabled or no device is available.
func newAudioDriver(cfg config.AudioConfig, logger *log.Logger) tui.AudioDriver {
	if !cfg.Enabled {
		logger.Debug("audio disabled by config")
		return audio.Nop{}
	}

	engine := audio.NewEngine(cfg, logger)
	if err := engine.Init(); err != nil {
		logger.Warn("audio unavailable, playing muted", "err", err)
		return audio.Nop{}
	}
	return engine
}
