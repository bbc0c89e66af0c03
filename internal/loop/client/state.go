package client

import (
	"time"

	"github.com/tomz197/bulletdodge/internal/game"
	"github.com/tomz197/bulletdodge/internal/input"
)

// ClientState holds per-connection host state. Game state lives in the controller.
type ClientState struct {
	Input         input.Input   // This frame's input
	Running       bool          // Client loop running
	ShuttingDown  bool          // Server announced shutdown
	delta         time.Duration // Frame delta time (host-side)
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state

	// Previous frame's screen mode, to trigger a full clear on change
	prevPhase       game.Phase
	wasInactive     bool
	wasShuttingDown bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running:   true,
		prevPhase: game.PhaseIdle,
	}
}
