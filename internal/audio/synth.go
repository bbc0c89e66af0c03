package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Synth plays tones on the local speaker.
// The speaker is opened on the first Play; if that fails the synth stays silent.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	failed      error
}

// NewSynth creates a synth. No audio device is touched until the first tone.
func NewSynth() *Synth {
	return &Synth{mixer: &beep.Mixer{}}
}

func (s *Synth) init() error {
	if s.initialized {
		return nil
	}
	if s.failed != nil {
		return s.failed
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		s.failed = fmt.Errorf("init speaker: %w", err)
		return s.failed
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes a fading sine tone into the output. It never blocks on playback.
func (s *Synth) Play(freq float64, duration time.Duration, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.init(); err != nil {
		return err
	}

	tone, err := NewTone(sampleRate, freq, duration, volume)
	if err != nil {
		return err
	}

	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
	return nil
}

// Close stops all pending tones.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
