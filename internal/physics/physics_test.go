package physics

import (
	"math"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		x1, y1 float64
		r1     float64
		x2, y2 float64
		r2     float64
		want   bool
	}{
		{"overlapping", 0, 0, 5, 7, 0, 4, true},
		{"apart", 0, 0, 5, 20, 0, 4, false},
		{"tangent", 0, 0, 5, 9, 0, 4, false},
		{"concentric", 3, 3, 1, 3, 3, 1, true},
		{"diagonal", 0, 0, 5, 6, 6, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CirclesOverlap(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2)
			if got != tt.want {
				t.Errorf("CirclesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance = %f, want 5", d)
	}
	if d := DistanceSquared(1, 1, 4, 5); d != 25 {
		t.Errorf("DistanceSquared = %f, want 25", d)
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	if math.Abs(x-0.6) > 1e-12 || math.Abs(y-0.8) > 1e-12 {
		t.Errorf("Normalize(3, 4) = (%f, %f), want (0.6, 0.8)", x, y)
	}

	x, y = Normalize(1, 1)
	if l := math.Hypot(x, y); math.Abs(l-1) > 1e-12 {
		t.Errorf("diagonal length = %f, want 1", l)
	}

	x, y = Normalize(0, 0)
	if x != 1 || y != 0 {
		t.Errorf("Normalize(0, 0) = (%f, %f), want fallback (1, 0)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(-3, 0, 10); v != 0 {
		t.Errorf("Clamp below = %f, want 0", v)
	}
	if v := Clamp(13, 0, 10); v != 10 {
		t.Errorf("Clamp above = %f, want 10", v)
	}
	if v := Clamp(4.5, 0, 10); v != 4.5 {
		t.Errorf("Clamp inside = %f, want 4.5", v)
	}
}
