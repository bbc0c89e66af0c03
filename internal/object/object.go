package object

import (
	"image/color"
	"time"

	"github.com/tomz197/bulletdodge/internal/input"
	"github.com/tomz197/bulletdodge/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta      time.Duration
	Input      Input
	Screen     Screen
	Spawner    Spawner
	Difficulty float64 // Current difficulty scalar
	TargetX    float64 // Player position projectiles are aimed at
	TargetY    float64
}

// Surface is a 2D drawing target. Implementations only need to clear and draw discs.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.RGBA)
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface Surface
}

// Screen represents the playfield dimensions in logical units.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a screen of the given size with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// ClampCircle keeps a circle of radius r fully inside the screen.
// This is a hard boundary: the position is pinned, velocity is not reflected.
func (s Screen) ClampCircle(x, y *float64, r float64) {
	w := float64(s.Width)
	h := float64(s.Height)

	*x = physics.Clamp(*x, r, w-r)
	*y = physics.Clamp(*y, r, h-r)
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto ctx.Surface.
	Draw(ctx DrawContext) error
}
