// Package audio turns the simulation's audio cues into sound with gopxl/beep.
// Two sustained tones follow the edges of the gap ahead, and a third tone
// follows the player, gated on and off faster as the gap gets closer.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappycat/internal/config"
)

// maxChirpPeriod bounds the gate interval when the chirp rate drops to zero.
const maxChirpPeriod = time.Second

// Frequency maps a playfield height to a tone: y = 0 gives top, y = 1 gives bottom.
func Frequency(y, top, bottom float64) float64 {
	return (1-y)*(top-bottom) + bottom
}

// ChirpPeriod returns how long the player tone stays on (and then off) for
// a horizontal distance to the next pipe.
func ChirpPeriod(distance, maxRate, minRate float64) time.Duration {
	rate := minRate + (1-distance)*(maxRate-minRate)
	if rate <= 0 {
		return maxChirpPeriod
	}
	period := time.Duration(float64(time.Second) / rate)
	if period > maxChirpPeriod {
		return maxChirpPeriod
	}
	return period
}

// Engine is an AudioSink backed by the system speaker.
type Engine struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	voices      *voices
	ctrl        *beep.Ctrl
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

// NewEngine creates a silent engine. Call Init before expecting sound.
func NewEngine(cfg config.AudioConfig, logger *log.Logger) *Engine {
	rate := beep.SampleRate(cfg.SampleRate)
	v := newVoices(rate)

	e := &Engine{
		cfg:    cfg,
		rate:   rate,
		voices: v,
		ctrl:   &beep.Ctrl{Streamer: newVolume(v, cfg.Volume), Paused: true},
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	e.mixer.Add(e.ctrl)
	return e
}

// Init opens the speaker and starts streaming (muted until Start).
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(e.rate, e.rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	speaker.Play(e.mixer)
	e.initialized = true
	e.logger.Debug("speaker initialized", "sample_rate", int(e.rate))
	return nil
}

// Start unmutes the tones.
func (e *Engine) Start() {
	e.update(func() { e.ctrl.Paused = false })
}

// Stop mutes the tones.
func (e *Engine) Stop() {
	e.update(func() { e.ctrl.Paused = true })
}

// SetPositions retunes the oscillators for the current pipe.
func (e *Engine) SetPositions(top, bottom, playerY, distance float64) {
	c := e.cfg
	period := ChirpPeriod(distance, c.MaxChirpFrequency, c.MinChirpFrequency)

	e.update(func() {
		e.voices.topFreq = Frequency(top, c.TopFrequency, c.BottomFrequency)
		e.voices.bottomFreq = Frequency(bottom, c.TopFrequency, c.BottomFrequency)
		e.voices.playerFreq = Frequency(playerY, c.TopFrequency, c.BottomFrequency)
		e.voices.chirpSamples = e.rate.N(period)
	})
}

// Close silences and detaches every streamer, then releases the speaker.
func (e *Engine) Close() {
	e.update(func() {
		e.ctrl.Paused = true
		e.mixer.Clear()
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Close()
	e.initialized = false
	e.logger.Debug("speaker closed")
}

// update applies f while the speaker goroutine is held off.
func (e *Engine) update(f func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		f()
		return
	}
	speaker.Lock()
	f()
	speaker.Unlock()
}

// newVolume wraps a streamer with a linear gain.
// math.Log2(0) is -Inf, so zero gain is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Nop is an AudioSink that makes no sound.
// Used when audio is disabled or the speaker is unavailable.
type Nop struct{}

// SetPositions ignores the cues.
func (Nop) SetPositions(top, bottom, playerY, distance float64) {}

// Start does nothing.
func (Nop) Start() {}

// Stop does nothing.
func (Nop) Stop() {}

// Close does nothing.
func (Nop) Close() {}
