package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// voices mixes the two gap-edge tones with the gated player tone.
type voices struct {
	rate float64

	topFreq    float64
	bottomFreq float64
	playerFreq float64

	topPhase    float64
	bottomPhase float64
	playerPhase float64

	chirpSamples int // Samples per on or off half of the gate, 0 = always on
	chirpPos     int
	chirpOn      bool
}

func newVoices(rate beep.SampleRate) *voices {
	return &voices{
		rate:    float64(rate),
		chirpOn: true,
	}
}

func (v *voices) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := math.Sin(2*math.Pi*v.topPhase) + math.Sin(2*math.Pi*v.bottomPhase)
		if v.chirpOn {
			val += math.Sin(2 * math.Pi * v.playerPhase)
		}
		val /= 3

		samples[i][0] = val
		samples[i][1] = val

		v.topPhase = advancePhase(v.topPhase, v.topFreq, v.rate)
		v.bottomPhase = advancePhase(v.bottomPhase, v.bottomFreq, v.rate)
		v.playerPhase = advancePhase(v.playerPhase, v.playerFreq, v.rate)

		if v.chirpSamples > 0 {
			v.chirpPos++
			if v.chirpPos >= v.chirpSamples {
				v.chirpOn = !v.chirpOn
				v.chirpPos = 0
			}
		}
	}
	return len(samples), true
}

func (v *voices) Err() error {
	return nil
}

// advancePhase keeps the oscillator phase in [0, 1).
func advancePhase(phase, freq, rate float64) float64 {
	phase += freq / rate
	return phase - math.Floor(phase)
}
