package audio

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// constant streams a fixed value on both channels.
type constant struct{}

func (constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0], samples[i][1] = 1, 1
	}
	return len(samples), true
}

func (constant) Err() error { return nil }

func TestDecayFadesExponentially(t *testing.T) {
	d := NewDecay(constant{}, 0.15, 100)
	samples := make([][2]float64, 101)
	d.Stream(samples)

	if math.Abs(samples[0][0]-0.15) > 1e-12 {
		t.Errorf("first sample = %f, want 0.15", samples[0][0])
	}
	if math.Abs(samples[100][0]-DecayFloor) > 1e-12 {
		t.Errorf("sample at duration = %g, want %g", samples[100][0], DecayFloor)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i][0] >= samples[i-1][0] {
			t.Fatalf("gain did not decrease at %d: %f -> %f", i, samples[i-1][0], samples[i][0])
		}
	}

	// Halfway gain is the geometric mean of the endpoints.
	want := math.Sqrt(0.15 * DecayFloor)
	if math.Abs(samples[50][0]-want) > 1e-12 {
		t.Errorf("midpoint gain = %g, want %g", samples[50][0], want)
	}
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone, err := NewTone(rate, 800, 50*time.Millisecond, 0.06)
	if err != nil {
		t.Fatalf("NewTone: %v", err)
	}

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := tone.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 0.06+1e-9 {
				t.Fatalf("sample %d exceeds volume: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(50 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestToneRejectsBadFrequency(t *testing.T) {
	if _, err := NewTone(beep.SampleRate(8000), 6000, time.Millisecond, 0.1); err == nil {
		t.Fatal("expected error for frequency above Nyquist")
	}
}

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	b := Bell{W: &buf}
	if err := b.Play(800, 50*time.Millisecond, 0.06); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\a" {
		t.Fatalf("wrote %q, want BEL", buf.String())
	}
}
