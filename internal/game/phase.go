package game

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for Start
	PhaseRunning              // Frames are being simulated
	PhaseOver                 // Collided; waiting for Reset
)

// String returns the status label shown to the player.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Waiting"
	case PhaseRunning:
		return "Surviving"
	case PhaseOver:
		return "Dead"
	default:
		return "Unknown"
	}
}
