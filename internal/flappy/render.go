package flappy

import "math"

// Size factors relative to the shorter viewport side.
const (
	playerRadiusFactor = 0.01
	pipeWidthFactor    = 0.02
)

// PlayerCoords is the player's geometry scaled to a viewport.
type PlayerCoords struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// PipeCoords is a pipe's geometry scaled to a viewport.
// The upper section spans [0, Top], the lower one [Bottom, Bottom+BottomHeight].
type PipeCoords struct {
	CenterX      float64
	Width        float64
	Top          float64
	Bottom       float64
	BottomHeight float64
}

// Left returns the x-coordinate of the pipe's left edge.
func (c PipeCoords) Left() float64 {
	return c.CenterX - c.Width/2
}

// RenderSink draws the game. Implementations own every drawing primitive.
type RenderSink interface {
	DrawPlayer(c PlayerCoords)
	DrawPipe(c PipeCoords)
}

// AudioSink turns the current pipe's gap, the player's height and the
// horizontal distance between them into sound.
type AudioSink interface {
	SetPositions(top, bottom, playerY, distance float64)
}

// PlayerCoordinates scales the player to a width x height viewport.
func (g *Game) PlayerCoordinates(width, height float64) PlayerCoords {
	return PlayerCoords{
		CenterX: g.cfg.Player.X * width,
		CenterY: g.player.Y * height,
		Radius:  math.Min(width, height) * playerRadiusFactor,
	}
}

// PipeCoordinates scales a pipe to a width x height viewport.
func PipeCoordinates(p Pipe, width, height float64) PipeCoords {
	return PipeCoords{
		CenterX:      p.X * width,
		Width:        math.Min(width, height) * pipeWidthFactor,
		Top:          p.Top * height,
		Bottom:       p.Bottom * height,
		BottomHeight: (1 - p.Bottom) * height,
	}
}

// Render hands the player and every pipe, oldest first, to the sink.
func (g *Game) Render(dst RenderSink, width, height float64) {
	dst.DrawPlayer(g.PlayerCoordinates(width, height))
	for _, p := range g.pipes {
		dst.DrawPipe(PipeCoordinates(p, width, height))
	}
}

// RenderAudio reports the current pipe to the sink.
// Nothing is reported while no pipe is ahead of the player.
func (g *Game) RenderAudio(dst AudioSink) {
	p, ok := g.CurrentPipe()
	if !ok {
		return
	}
	dst.SetPositions(p.Top, p.Bottom, g.player.Y, p.X-g.cfg.Player.X)
}
