package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPipeFitsPlayfield(t *testing.T) {
	tests := []struct {
		name    string
		opening float64
		u       float64
		top     float64
	}{
		{"lowest draw", 0.5, 0, 0},
		{"middle draw", 0.5, 0.5, 0.25},
		{"full-height opening", 0.8, 0.5, 0.1},
		{"highest draw", 0.3, 0.999999, 0.7 * 0.999999},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPipe(tc.opening, tc.u)
			assert.Equal(t, 1.0, p.X)
			assert.InDelta(t, tc.top, p.Top, tolerance)
			assert.InDelta(t, tc.opening, p.Opening(), tolerance)
			assert.GreaterOrEqual(t, p.Top, 0.0)
			assert.LessOrEqual(t, p.Bottom, 1.0)
		})
	}
}

func TestPipeContains(t *testing.T) {
	p := Pipe{Top: 0.2, Bottom: 0.6}

	assert.True(t, p.Contains(0.4))
	assert.False(t, p.Contains(0.2))
	assert.False(t, p.Contains(0.6))
	assert.False(t, p.Contains(0.1))
	assert.False(t, p.Contains(0.9))
}

func TestOpeningSizeShrinksWithScore(t *testing.T) {
	g, _ := newTestGame(t)

	prev := g.OpeningSize(0)
	assert.Equal(t, 0.8, prev)
	for score := 1; score <= 80; score++ {
		cur := g.OpeningSize(score)
		assert.LessOrEqual(t, cur, prev, "score %d", score)
		assert.GreaterOrEqual(t, cur, 0.3, "score %d", score)
		prev = cur
	}

	assert.Equal(t, 0.3, g.OpeningSize(50))
	assert.Equal(t, 0.3, g.OpeningSize(1000))
}

func TestMaxMarginShrinksWithScore(t *testing.T) {
	g, _ := newTestGame(t)

	assert.Equal(t, 0.5, g.MaxMargin(0))
	for score := 1; score <= 50; score++ {
		assert.Less(t, g.MaxMargin(score), g.MaxMargin(score-1), "score %d", score)
	}
	assert.Equal(t, 0.1, g.MaxMargin(50))
	assert.Equal(t, 0.1, g.MaxMargin(75))
}

func TestRandomPipeUsesCurrentScore(t *testing.T) {
	g, _ := newTestGame(t)

	g.score = 25
	p := g.randomPipe()
	assert.InDelta(t, 0.55, p.Opening(), tolerance)

	g.score = 60
	p = g.randomPipe()
	assert.InDelta(t, 0.3, p.Opening(), tolerance)
	assert.GreaterOrEqual(t, p.Top, 0.0)
	assert.LessOrEqual(t, p.Bottom, 1.0)
}
