// Package config centralizes the terminal host's timing and layout parameters.
// Gameplay tuning lives with the simulation in package game.
package config

import "time"

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered render area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// HUD rows reserved above and below the playfield.
const (
	HUDTopRows    = 1
	HUDBottomRows = 1
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Prompt blink period on the title and game over screens.
const PromptBlinkPeriod = 600 * time.Millisecond

// MaxUsernameLength is the maximum display length for usernames.
const MaxUsernameLength = 16
