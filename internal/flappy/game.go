// Package flappy implements the flappycat simulation.
// The player falls under gravity and must pass through the gaps of pipes that
// drift in from the right. The package holds no rendering or audio code; it
// hands geometry to a RenderSink and gap/height cues to an AudioSink.
package flappy

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flappycat/internal/config"
)

// ErrNilHook is returned by New when a lifecycle hook is missing.
var ErrNilHook = errors.New("flappy: lifecycle hooks must not be nil")

// Hooks are the simulation's only outward signals.
// Both are invoked synchronously from inside Advance.
type Hooks struct {
	// OnScoreChange receives the new score each time a pipe is cleared.
	OnScoreChange func(score int)

	// OnGameOver fires on a pipe collision or when the player leaves the
	// playfield. The game does not halt itself; the owner stops advancing it.
	OnGameOver func()
}

// Player is the falling entity.
type Player struct {
	Y  float64 // Vertical position, 0 = top, 1 = bottom
	VY float64 // Vertical velocity, positive = down
}

// Game is the per-frame simulation.
type Game struct {
	player     Player
	pipes      []Pipe
	score      int
	hooks      Hooks
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// New creates a game with the player at mid-height and a single fresh pipe.
func New(cfg config.FlappyConfig, seed int64, hooks Hooks) (*Game, error) {
	if hooks.OnScoreChange == nil || hooks.OnGameOver == nil {
		return nil, ErrNilHook
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	g := &Game{
		player:     Player{Y: 0.5},
		pipes:      make([]Pipe, 0, 8),
		hooks:      hooks,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
	}
	g.pipes = append(g.pipes, g.randomPipe())
	return g, nil
}

// Flap adds the flap impulse to the player's vertical velocity.
// Repeated flaps stack.
func (g *Game) Flap() {
	g.player.VY += g.cfg.Physics.FlapImpulse
}

// Advance steps the simulation by dt seconds.
func (g *Game) Advance(dt float64) {
	// Position uses the velocity from before this tick
	g.player.Y += g.player.VY * dt
	g.player.VY += g.cfg.Physics.Gravity * dt
	if g.player.Y < 0 || g.player.Y > 1 {
		g.hooks.OnGameOver()
	}

	for i := range g.pipes {
		g.pipes[i].X += g.cfg.Physics.PipeVelocity * dt
	}

	g.checkCrossings()
	g.removeOffscreen()
	g.spawnPipes()
}

// checkCrossings scores or ends the run for every pipe that reached the
// player this tick. Each pipe is checked exactly once.
func (g *Game) checkCrossings() {
	playerX := g.cfg.Player.X
	for i := range g.pipes {
		p := &g.pipes[i]
		if p.Passed || p.X >= playerX {
			continue
		}
		p.Passed = true

		if p.Contains(g.player.Y) {
			g.score++
			g.hooks.OnScoreChange(g.score)
		} else {
			g.hooks.OnGameOver()
		}
	}
}

// Score returns the number of pipes cleared.
func (g *Game) Score() int {
	return g.score
}

// Player returns a copy of the player state.
func (g *Game) Player() Player {
	return g.player
}

// PlayerX returns the player's fixed horizontal position.
func (g *Game) PlayerX() float64 {
	return g.cfg.Player.X
}

// Pipes returns a copy of the pipe queue, oldest (leftmost) first.
func (g *Game) Pipes() []Pipe {
	out := make([]Pipe, len(g.pipes))
	copy(out, g.pipes)
	return out
}

// CurrentPipe returns the first pipe that has not yet reached the player.
func (g *Game) CurrentPipe() (Pipe, bool) {
	for _, p := range g.pipes {
		if p.X >= g.cfg.Player.X {
			return p, true
		}
	}
	return Pipe{}, false
}
