package object

import (
	"math"
	"math/rand"
	"time"
)

// Spawn cadence tuning.
const (
	SpawnPadding       = 10.0 // How far outside the screen edge projectiles appear
	SpawnIntervalBase  = 1.0  // Seconds between spawns at difficulty 0
	SpawnIntervalRate  = 0.05 // Seconds removed per difficulty point
	SpawnIntervalFloor = 0.2  // Fastest allowed cadence
)

// Screen edges, in the order they are picked.
const (
	EdgeTop = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnInterval returns the countdown used after each spawn.
// It shrinks linearly with difficulty and never drops below SpawnIntervalFloor.
func SpawnInterval(difficulty float64) float64 {
	return math.Max(SpawnIntervalFloor, SpawnIntervalBase-difficulty*SpawnIntervalRate)
}

// ProjectileSpawner emits projectiles from the screen edges on a countdown.
type ProjectileSpawner struct {
	timer float64 // Seconds until the next spawn
	rng   *rand.Rand
}

// NewProjectileSpawner creates a spawner that fires on its first update.
// A nil rng gets a time-seeded source.
func NewProjectileSpawner(rng *rand.Rand) *ProjectileSpawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ProjectileSpawner{rng: rng}
}

// Timer returns the seconds remaining until the next spawn.
func (s *ProjectileSpawner) Timer() float64 {
	return s.timer
}

// Reset rewinds the countdown so the next update spawns immediately.
func (s *ProjectileSpawner) Reset() {
	s.timer = 0
}

// Update counts down and spawns one projectile aimed at the target when the timer expires.
func (s *ProjectileSpawner) Update(ctx UpdateContext) (bool, error) {
	s.timer -= ctx.Delta.Seconds()
	if s.timer > 0 {
		return false, nil
	}

	if ctx.Spawner != nil {
		ctx.Spawner.Spawn(s.NewProjectile(ctx.Screen, ctx.TargetX, ctx.TargetY, ctx.Difficulty))
	}
	s.timer = SpawnInterval(ctx.Difficulty)
	return false, nil
}

// Draw is a no-op; spawner is not visible.
func (s *ProjectileSpawner) Draw(_ DrawContext) error {
	return nil
}

// NewProjectile creates a projectile just outside a random screen edge, aimed at the target.
func (s *ProjectileSpawner) NewProjectile(screen Screen, targetX, targetY, difficulty float64) *Projectile {
	x, y := s.edgePoint(screen, s.rng.Intn(4))
	return NewProjectileToward(x, y, targetX, targetY, difficulty)
}

// edgePoint picks a uniform point along the given edge, pushed outward by SpawnPadding.
func (s *ProjectileSpawner) edgePoint(screen Screen, edge int) (float64, float64) {
	w := float64(screen.Width)
	h := float64(screen.Height)

	switch edge {
	case EdgeTop:
		return s.rng.Float64() * w, -SpawnPadding
	case EdgeRight:
		return w + SpawnPadding, s.rng.Float64() * h
	case EdgeBottom:
		return s.rng.Float64() * w, h + SpawnPadding
	default:
		return -SpawnPadding, s.rng.Float64() * h
	}
}
