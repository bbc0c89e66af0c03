package game

import "github.com/tomz197/bulletdodge/internal/object"

// Render clears the surface and draws every projectile, then the player on top.
func Render(s *Session, surface object.Surface) error {
	surface.Clear()

	ctx := object.DrawContext{Surface: surface}
	for _, p := range s.Projectiles {
		if err := p.Draw(ctx); err != nil {
			return err
		}
	}
	return s.Player.Draw(ctx)
}
