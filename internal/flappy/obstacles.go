package flappy

// Pipe represents a vertical obstacle with a gap for the player to pass through.
// The pipe covers the playfield above Top and below Bottom.
type Pipe struct {
	X      float64 // Horizontal center position, 1 at the spawn edge
	Top    float64 // Top edge of the gap
	Bottom float64 // Bottom edge of the gap
	Passed bool    // Set once when the pipe crosses the player
}

// Opening returns the gap height.
func (p Pipe) Opening() float64 {
	return p.Bottom - p.Top
}

// Contains reports whether y lies strictly inside the gap.
func (p Pipe) Contains(y float64) bool {
	return p.Top < y && y < p.Bottom
}

// NewPipe builds a pipe at the spawn edge with the given gap height.
// u is a uniform draw in [0, 1) that places the gap so it fits the playfield.
func NewPipe(opening, u float64) Pipe {
	top := (1 - opening) * u
	return Pipe{
		X:      1.0,
		Top:    top,
		Bottom: top + opening,
	}
}

// OpeningSize returns the gap height for pipes spawned at the given score.
// It shrinks linearly from max_opening to min_opening as the difficulty level rises.
func (g *Game) OpeningSize(score int) float64 {
	o := g.cfg.Obstacles
	return g.difficulty.Lerp(o.MaxOpening, o.MinOpening, score)
}

// MaxMargin returns the largest allowed distance between the spawn edge
// and the rightmost pipe at the given score.
func (g *Game) MaxMargin(score int) float64 {
	o := g.cfg.Obstacles
	return g.difficulty.Lerp(o.MaxMargin, o.MinMargin, score)
}

// randomPipe creates a new pipe for the current score.
func (g *Game) randomPipe() Pipe {
	return NewPipe(g.OpeningSize(g.score), g.rng.Float64())
}

// spawnPipes appends a new pipe when the rightmost one has drifted
// further than the allowed margin from the spawn edge.
func (g *Game) spawnPipes() {
	if len(g.pipes) == 0 {
		g.pipes = append(g.pipes, g.randomPipe())
		return
	}

	rightmost := g.pipes[len(g.pipes)-1]
	if 1-rightmost.X > g.MaxMargin(g.score) {
		g.pipes = append(g.pipes, g.randomPipe())
	}
}

// removeOffscreen drops pipes that have reached the left edge.
func (g *Game) removeOffscreen() {
	valid := g.pipes[:0]
	for _, p := range g.pipes {
		if p.X > 0 {
			valid = append(valid, p)
		}
	}
	g.pipes = valid
}
