// Package game holds the dodge simulation: the session state, the per-frame step,
// and the controller that drives the Idle -> Running -> Over lifecycle.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/bulletdodge/internal/object"
)

// Session holds all mutable state for one playfield.
// It is owned by a single Controller and is not safe for concurrent use.
type Session struct {
	Screen      object.Screen
	Phase       Phase
	Player      *object.Player
	Projectiles []*object.Projectile
	Spawner     *object.ProjectileSpawner

	Elapsed        float64 // Seconds survived in the current run
	Difficulty     float64
	AutoDifficulty bool
	SoundOn        bool

	Best      float64   // Best survival time, mirrored from the score store
	NewRecord bool      // The last finished run beat the previous best
	LastFrame time.Time // Timestamp of the previous simulated frame
}

// NewSession creates an idle session on the given screen.
// A nil rng gets a time-seeded source.
func NewSession(screen object.Screen, rng *rand.Rand) *Session {
	s := &Session{
		Screen:  screen,
		Spawner: object.NewProjectileSpawner(rng),
	}
	s.reset()
	return s
}

// reset reinitializes everything except the best score.
func (s *Session) reset() {
	s.Phase = PhaseIdle
	s.Player = object.NewPlayer(float64(s.Screen.Width)/2, float64(s.Screen.Height)/2)
	s.Projectiles = nil
	s.Spawner.Reset()
	s.Elapsed = 0
	s.Difficulty = InitialDifficulty
	s.AutoDifficulty = true
	s.SoundOn = true
	s.NewRecord = false
	s.LastFrame = time.Time{}
}

// Spawn adds a spawned object to the session. Implements object.Spawner.
func (s *Session) Spawn(obj object.Object) {
	if p, ok := obj.(*object.Projectile); ok {
		s.Projectiles = append(s.Projectiles, p)
	}
}
