package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappycat/internal/config"
	"github.com/vovakirdan/flappycat/internal/core"
	"github.com/vovakirdan/flappycat/internal/flappy"
)

// run owns the current simulation and the state its hooks report.
// It is shared by pointer so that the hooks can update it from inside Advance.
type run struct {
	game    *flappy.Game
	cfg     config.FlappyConfig
	seed    int64
	score   int
	best    int
	running bool
	over    bool
	logger  *log.Logger
}

func newRun(cfg config.FlappyConfig, seed int64, logger *log.Logger) (*run, error) {
	r := &run{cfg: cfg, seed: seed, logger: logger}
	if err := r.reset(); err != nil {
		return nil, err
	}
	return r, nil
}

// reset discards the simulation and builds a fresh, stopped one.
// The session best survives.
func (r *run) reset() error {
	seed := r.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := flappy.New(r.cfg, seed, flappy.Hooks{
		OnScoreChange: r.onScoreChange,
		OnGameOver:    r.onGameOver,
	})
	if err != nil {
		return err
	}

	r.game = game
	r.score = 0
	r.running = false
	r.over = false
	r.logger.Debug("new run", "seed", seed)
	return nil
}

// start begins advancing the simulation.
func (r *run) start() {
	if r.running || r.over {
		return
	}
	r.running = true
	r.logger.Info("run started")
}

func (r *run) onScoreChange(score int) {
	r.score = score
	if score > r.best {
		r.best = score
	}
	r.logger.Debug("pipe cleared", "score", score)
}

func (r *run) onGameOver() {
	// Several signals can arrive before the frame loop stops advancing
	if r.over {
		return
	}
	r.over = true
	r.logger.Info("game over", "score", r.score, "best", r.best)
}

// state returns the frontend's view of the run.
func (r *run) state() core.GameState {
	return core.GameState{
		Score:    r.score,
		Best:     r.best,
		Running:  r.running && !r.over,
		GameOver: r.over,
	}
}
