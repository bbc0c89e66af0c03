package object

import (
	"image/color"

	"github.com/tomz197/bulletdodge/internal/physics"
)

// Player defaults.
const (
	PlayerRadius = 12.0
	PlayerSpeed  = 380.0 // Logical units per second
)

// PlayerColor is the mint green used for the player disc.
var PlayerColor = color.RGBA{R: 0x86, G: 0xf0, B: 0xc8, A: 0xff}

// Player is the player-controlled disc.
type Player struct {
	X, Y   float64 // Position (center)
	Radius float64
	Speed  float64
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Radius: PlayerRadius,
		Speed:  PlayerSpeed,
	}
}

// Update moves the player along the held direction and pins it inside the screen.
// Diagonal input is normalized so every direction moves at the same speed.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	dx, dy := ctx.Input.Axis()
	if dx != 0 || dy != 0 {
		dx, dy = physics.Normalize(dx, dy)
		p.X += dx * p.Speed * dt
		p.Y += dy * p.Speed * dt
	}

	ctx.Screen.ClampCircle(&p.X, &p.Y, p.Radius)

	return false, nil
}

// Draw renders the player as a filled disc.
func (p *Player) Draw(ctx DrawContext) error {
	ctx.Surface.FillCircle(p.X, p.Y, p.Radius, PlayerColor)
	return nil
}

// GetPosition returns the player's center position.
func (p *Player) GetPosition() (float64, float64) {
	return p.X, p.Y
}

// GetRadius returns the player's collision radius.
func (p *Player) GetRadius() float64 {
	return p.Radius
}
