package object

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/bulletdodge/internal/physics"
)

// Projectile tuning.
const (
	ProjectileRadius             = 6.0
	ProjectileBaseSpeed          = 120.0
	ProjectileSpeedPerDifficulty = 40.0
)

// Projectile colors are HSL with the hue rising with difficulty.
const (
	projectileHueBase          = 20.0 // Degrees at difficulty 0
	projectileHuePerDifficulty = 10.0
	projectileSaturation       = 0.8
	projectileLightness        = 0.6
)

// Projectile is a hazard travelling in a straight line.
// Its direction is fixed when it is spawned; only the position changes afterwards.
type Projectile struct {
	X, Y   float64 // Position
	VX, VY float64 // Unit direction
	Speed  float64 // Units per second along (VX, VY)
	Radius float64
	Color  color.RGBA
}

// ProjectileSpeed returns the projectile speed for a difficulty level.
func ProjectileSpeed(difficulty float64) float64 {
	return ProjectileBaseSpeed + difficulty*ProjectileSpeedPerDifficulty
}

// DifficultyColor derives the projectile color from the difficulty.
// Hue wraps around the color wheel like CSS hsl() does.
func DifficultyColor(difficulty float64) color.RGBA {
	hue := math.Mod(projectileHueBase+difficulty*projectileHuePerDifficulty, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsl(hue, projectileSaturation, projectileLightness).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// NewProjectileToward creates a projectile at (x, y) aimed at (targetX, targetY).
// Speed and color follow the given difficulty.
func NewProjectileToward(x, y, targetX, targetY, difficulty float64) *Projectile {
	vx, vy := physics.Normalize(targetX-x, targetY-y)
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Speed:  ProjectileSpeed(difficulty),
		Radius: ProjectileRadius,
		Color:  DifficultyColor(difficulty),
	}
}

// Update advances the projectile along its direction. Projectiles are never culled.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.X += p.VX * p.Speed * dt
	p.Y += p.VY * p.Speed * dt

	return false, nil
}

// Draw renders the projectile.
func (p *Projectile) Draw(ctx DrawContext) error {
	ctx.Surface.FillCircle(p.X, p.Y, p.Radius, p.Color)
	return nil
}

// Hits reports whether the projectile overlaps the player.
func (p *Projectile) Hits(player *Player) bool {
	return physics.CirclesOverlap(p.X, p.Y, p.Radius, player.X, player.Y, player.Radius)
}
