package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappycat/internal/config"
)

const tolerance = 1e-9

// recorder captures lifecycle hook invocations.
type recorder struct {
	scores    []int
	gameOvers int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnScoreChange: func(score int) { r.scores = append(r.scores, score) },
		OnGameOver:    func() { r.gameOvers++ },
	}
}

func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	g, err := New(config.DefaultFlappyConfig(), 1, rec.hooks())
	require.NoError(t, err)
	return g, rec
}

func TestNewRejectsNilHooks(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	_, err := New(cfg, 1, Hooks{OnGameOver: func() {}})
	assert.ErrorIs(t, err, ErrNilHook)

	_, err = New(cfg, 1, Hooks{OnScoreChange: func(int) {}})
	assert.ErrorIs(t, err, ErrNilHook)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.PipeVelocity = 0

	rec := &recorder{}
	_, err := New(cfg, 1, rec.hooks())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewInitialState(t *testing.T) {
	g, rec := newTestGame(t)

	assert.Equal(t, Player{Y: 0.5, VY: 0}, g.Player())
	assert.Equal(t, 0, g.Score())
	assert.Empty(t, rec.scores)

	pipes := g.Pipes()
	require.Len(t, pipes, 1)
	assert.Equal(t, 1.0, pipes[0].X)
	assert.InDelta(t, 0.8, pipes[0].Opening(), tolerance)
	assert.GreaterOrEqual(t, pipes[0].Top, 0.0)
	assert.LessOrEqual(t, pipes[0].Bottom, 1.0)
	assert.False(t, pipes[0].Passed)
}

func TestAdvanceOneSecondFromRest(t *testing.T) {
	g, rec := newTestGame(t)

	g.Advance(1.0)

	assert.InDelta(t, 1.6, g.Player().VY, tolerance)
	assert.Equal(t, 0.5, g.Player().Y)
	assert.Zero(t, rec.gameOvers)
}

func TestFlapThenZeroAdvance(t *testing.T) {
	g, _ := newTestGame(t)

	g.Flap()
	g.Advance(0)

	assert.Equal(t, -0.65, g.Player().VY)
	assert.Equal(t, 0.5, g.Player().Y)
}

func TestFlapIsIndependentOfVelocity(t *testing.T) {
	for _, vy := range []float64{-1.2, 0, 0.3, 2.5} {
		g, _ := newTestGame(t)
		g.player.VY = vy

		g.Flap()

		assert.InDelta(t, vy-0.65, g.Player().VY, tolerance, "starting vy %v", vy)
	}
}

func TestFlapsStack(t *testing.T) {
	g, _ := newTestGame(t)

	g.Flap()
	g.Flap()
	g.Flap()

	assert.InDelta(t, -1.95, g.Player().VY, tolerance)
}

func TestVelocityAfterEqualTicks(t *testing.T) {
	const (
		n  = 12
		dt = 0.01
	)
	g, _ := newTestGame(t)

	prevY := g.Player().Y
	for i := 0; i < n; i++ {
		g.Advance(dt)
		assert.GreaterOrEqual(t, g.Player().Y, prevY, "player must not rise without a flap")
		prevY = g.Player().Y
	}

	assert.InDelta(t, n*1.6*dt, g.Player().VY, tolerance)
}

func TestFreeFallEndsOnFirstTickBelowFloor(t *testing.T) {
	g, rec := newTestGame(t)
	dt := 1.0 / 60.0

	for i := 0; i < 600; i++ {
		g.Advance(dt)
		if g.Player().Y > 1 {
			assert.Equal(t, 1, rec.gameOvers, "game over must fire on the tick y first exceeds 1")
			return
		}
		require.Zero(t, rec.gameOvers, "game over fired early at tick %d, y=%v", i, g.Player().Y)
	}
	t.Fatal("player never left the playfield")
}

func TestLeavingTopEndsRun(t *testing.T) {
	g, rec := newTestGame(t)
	g.player.Y = 0.01

	g.Flap()
	g.Advance(0.1)

	assert.Less(t, g.Player().Y, 0.0)
	assert.Equal(t, 1, rec.gameOvers)
}

func TestPipeCrossingInsideGapScores(t *testing.T) {
	g, rec := newTestGame(t)
	g.pipes = []Pipe{{X: 0.1005, Top: 0.4, Bottom: 0.6}}

	g.Advance(0.01)

	assert.Equal(t, 1, g.Score())
	assert.Equal(t, []int{1}, rec.scores)
	assert.Zero(t, rec.gameOvers)
	assert.True(t, g.pipes[0].Passed)

	// The same pipe is never checked again
	for i := 0; i < 10; i++ {
		g.Advance(0.01)
	}
	assert.Equal(t, 1, g.Score())
	assert.Zero(t, rec.gameOvers)
}

func TestPipeCrossingOutsideGapEndsRun(t *testing.T) {
	g, rec := newTestGame(t)
	g.pipes = []Pipe{{X: 0.1005, Top: 0.1, Bottom: 0.3}}

	g.Advance(0.01)

	assert.Equal(t, 1, rec.gameOvers)
	assert.Equal(t, 0, g.Score())
	assert.Empty(t, rec.scores)

	for i := 0; i < 10; i++ {
		g.Advance(0.01)
	}
	assert.Equal(t, 1, rec.gameOvers, "a pipe triggers at most one check")
}

func TestPipeEdgeIsNotInsideGap(t *testing.T) {
	g, rec := newTestGame(t)
	g.pipes = []Pipe{{X: 0.1005, Top: 0.5, Bottom: 0.7}}

	g.Advance(0.01)

	assert.Equal(t, 1, rec.gameOvers)
	assert.Equal(t, 0, g.Score())
}

func TestPipeAlreadyPastIsIgnored(t *testing.T) {
	g, rec := newTestGame(t)
	g.pipes = []Pipe{{X: 0.05, Top: 0.1, Bottom: 0.2, Passed: true}}

	g.Advance(0.01)

	assert.Zero(t, rec.gameOvers)
	assert.Equal(t, 0, g.Score())
}

func TestScoreSequenceIncrementsByOne(t *testing.T) {
	g, rec := newTestGame(t)
	g.pipes = []Pipe{
		{X: 0.1005, Top: 0.01, Bottom: 0.99},
		{X: 0.1020, Top: 0.01, Bottom: 0.99},
		{X: 0.1035, Top: 0.01, Bottom: 0.99},
	}

	for i := 0; i < 3; i++ {
		g.Advance(0.01)
	}

	assert.Equal(t, []int{1, 2, 3}, rec.scores)
	assert.Equal(t, 3, g.Score())
	assert.Zero(t, rec.gameOvers)
}

func TestPipesMoveAtConstantSpeed(t *testing.T) {
	g, _ := newTestGame(t)
	g.score = 40

	g.Advance(0.5)

	assert.InDelta(t, 1-0.06, g.Pipes()[0].X, tolerance)
}

func TestPipesRemovedAtLeftEdge(t *testing.T) {
	g, _ := newTestGame(t)
	g.pipes = []Pipe{
		{X: 0.0005, Top: 0.1, Bottom: 0.9, Passed: true},
		{X: 0.6, Top: 0.1, Bottom: 0.9},
	}

	g.Advance(0.01)

	pipes := g.Pipes()
	require.NotEmpty(t, pipes)
	for _, p := range pipes {
		assert.Greater(t, p.X, 0.0)
	}
	assert.InDelta(t, 0.6-0.0012, pipes[0].X, tolerance)
}

func TestQueueNeverEmpty(t *testing.T) {
	g, _ := newTestGame(t)

	// One huge step carries every pipe off the left edge
	g.player.Y = 0.5
	g.Advance(20)

	assert.NotEmpty(t, g.Pipes())
}

func TestSpawnAtScoreZeroOnceMarginExceeded(t *testing.T) {
	g, _ := newTestGame(t)
	g.pipes = []Pipe{{X: 0.5, Top: 0.1, Bottom: 0.9}}

	// Distance equals the margin: no spawn yet
	g.Advance(0)
	require.Len(t, g.Pipes(), 1)

	g.Advance(0.01)
	pipes := g.Pipes()
	require.Len(t, pipes, 2)
	assert.Equal(t, 1.0, pipes[1].X)
	assert.InDelta(t, 0.8, pipes[1].Opening(), tolerance)
}

func TestSpawnIsDenserAtHigherScore(t *testing.T) {
	g, _ := newTestGame(t)
	g.score = 50
	g.pipes = []Pipe{{X: 0.85, Top: 0.1, Bottom: 0.9}}

	g.Advance(0.01)

	pipes := g.Pipes()
	require.Len(t, pipes, 2)
	assert.InDelta(t, 0.3, pipes[1].Opening(), tolerance)
	assert.Equal(t, 0.3, g.OpeningSize(g.score))
}

func TestCurrentPipe(t *testing.T) {
	g, _ := newTestGame(t)
	g.pipes = []Pipe{
		{X: 0.05, Top: 0.1, Bottom: 0.5, Passed: true},
		{X: 0.6, Top: 0.2, Bottom: 0.6},
		{X: 1.0, Top: 0.3, Bottom: 0.7},
	}

	p, ok := g.CurrentPipe()
	require.True(t, ok)
	assert.Equal(t, 0.6, p.X)

	g.pipes = []Pipe{{X: 0.05, Top: 0.1, Bottom: 0.5, Passed: true}}
	_, ok = g.CurrentPipe()
	assert.False(t, ok)
}

func TestPipesReturnsCopy(t *testing.T) {
	g, _ := newTestGame(t)

	pipes := g.Pipes()
	pipes[0].X = -5

	assert.Equal(t, 1.0, g.Pipes()[0].X)
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs produce identical runs
	run := func() ([]Pipe, int) {
		rec := &recorder{}
		g, err := New(config.DefaultFlappyConfig(), 12345, rec.hooks())
		require.NoError(t, err)

		for i := 0; i < 600; i++ {
			if i%20 == 0 {
				g.Flap()
			}
			g.Advance(1.0 / 60.0)
		}
		return g.Pipes(), g.Score()
	}

	pipes1, score1 := run()
	pipes2, score2 := run()

	assert.Equal(t, pipes1, pipes2)
	assert.Equal(t, score1, score2)
}
