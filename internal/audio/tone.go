// Package audio plays the short feedback tones of the game.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// DecayFloor is the gain a tone fades to by the end of its duration.
const DecayFloor = 0.0001

// decay scales a stream by a gain that falls exponentially from volume to DecayFloor.
type decay struct {
	streamer beep.Streamer
	volume   float64
	position int
	total    int
}

// NewDecay wraps s with an exponential fade that lasts total samples.
func NewDecay(s beep.Streamer, volume float64, total int) beep.Streamer {
	return &decay{streamer: s, volume: volume, total: total}
}

// gain returns the gain applied at sample position pos.
func (d *decay) gain(pos int) float64 {
	if d.volume <= DecayFloor || d.total <= 0 {
		return math.Min(d.volume, DecayFloor)
	}
	t := float64(pos) / float64(d.total)
	return d.volume * math.Pow(DecayFloor/d.volume, t)
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := d.gain(d.position)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// NewTone builds a sine tone of the given frequency that fades out over duration.
func NewTone(rate beep.SampleRate, freq float64, duration time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0f Hz: %w", freq, err)
	}
	total := rate.N(duration)
	return NewDecay(beep.Take(total, sine), volume, total), nil
}
