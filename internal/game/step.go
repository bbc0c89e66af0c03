package game

import (
	"time"

	"github.com/tomz197/bulletdodge/internal/input"
	"github.com/tomz197/bulletdodge/internal/object"
)

// Step advances the session by dt and reports whether the player was hit.
//
// Order per frame: move and clamp the player, run the spawn countdown, advance
// projectiles while testing each against the player, then accumulate elapsed time
// and difficulty. The first hit ends the frame: later projectiles are not advanced
// and the elapsed time is not accumulated.
func Step(s *Session, in input.Input, dt time.Duration) bool {
	ctx := object.UpdateContext{
		Delta:      dt,
		Input:      in,
		Screen:     s.Screen,
		Spawner:    s,
		Difficulty: s.Difficulty,
	}

	s.Player.Update(ctx)

	ctx.TargetX, ctx.TargetY = s.Player.GetPosition()
	s.Spawner.Update(ctx)

	for i := len(s.Projectiles) - 1; i >= 0; i-- {
		p := s.Projectiles[i]
		p.Update(ctx)
		if p.Hits(s.Player) {
			return true
		}
	}

	s.Elapsed += dt.Seconds()
	if s.AutoDifficulty {
		s.Difficulty = DifficultyAt(s.Elapsed)
	}

	return false
}
