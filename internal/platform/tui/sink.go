package tui

import (
	"math"

	"github.com/vovakirdan/flappycat/internal/core"
	"github.com/vovakirdan/flappycat/internal/flappy"
)

// Visual elements
const (
	PlayerChar    = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// minPipeCols keeps pipes readable on narrow terminals.
const minPipeCols = 2

// screenSink rasterizes the game into a rectangle of a Screen.
// Coordinates handed to it are relative to the rectangle's top-left corner.
type screenSink struct {
	screen *core.Screen
	area   core.Rect
}

var _ flappy.RenderSink = screenSink{}

// DrawPlayer marks the cell containing the player's center.
func (s screenSink) DrawPlayer(c flappy.PlayerCoords) {
	if s.area.Empty() {
		return
	}
	x := int(math.Floor(c.CenterX))
	y := core.Clamp(int(math.Floor(c.CenterY)), 0, s.area.H-1)
	s.set(x, y, PlayerChar, core.ColorBrightYellow)
}

// DrawPipe fills both pipe sections.
// Partially covered rows belong to the gap, so a player drawn inside the gap
// never overlaps a pipe cell.
func (s screenSink) DrawPipe(c flappy.PipeCoords) {
	left, right := c.Left(), c.Left()+c.Width
	if right-left < minPipeCols {
		left = c.CenterX - minPipeCols/2.0
		right = c.CenterX + minPipeCols/2.0
	}

	upper := core.RectFromBounds(left, 0, right, math.Floor(c.Top))
	lower := core.RectFromBounds(left, math.Ceil(c.Bottom), right, math.Ceil(c.Bottom+c.BottomHeight))

	s.fill(upper, PipeChar, core.ColorGreen)
	s.fill(lower, PipeChar, core.ColorGreen)

	// Caps face the gap
	if !upper.Empty() {
		for x := upper.X; x < upper.Right(); x++ {
			s.set(x, upper.Bottom()-1, PipeCapTop, core.ColorBrightGreen)
		}
	}
	if !lower.Empty() {
		for x := lower.X; x < lower.Right(); x++ {
			s.set(x, lower.Y, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

func (s screenSink) fill(r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.set(x, y, ch, c)
		}
	}
}

// set draws a cell clipped to the sink's area.
func (s screenSink) set(x, y int, ch rune, c core.Color) {
	x, y = s.area.X+x, s.area.Y+y
	if !s.area.Contains(x, y) {
		return
	}
	s.screen.SetColored(x, y, ch, c)
}
