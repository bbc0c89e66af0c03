package game

import "time"

// Playfield size in logical units. Hosts scale it to their output.
const (
	PlayfieldWidth  = 800
	PlayfieldHeight = 600
)

// Difficulty
const (
	InitialDifficulty = 1.0
	DifficultyRate    = 0.08 // Difficulty gained per survived second in auto mode
	DifficultyStep    = 1.0  // Manual adjustment per command
)

// Tones played on state changes: frequency (Hz), duration, volume.
const (
	StartToneFreq     = 800.0
	StartToneDuration = 50 * time.Millisecond
	StartToneVolume   = 0.06

	GameOverToneFreq     = 120.0
	GameOverToneDuration = 200 * time.Millisecond
	GameOverToneVolume   = 0.15
)

// DifficultyAt returns the auto-mode difficulty after elapsed seconds of survival.
func DifficultyAt(elapsed float64) float64 {
	return InitialDifficulty + elapsed*DifficultyRate
}
