package game

import (
	"fmt"

	"github.com/tomz197/bulletdodge/internal/input"
)

// Command is a UI action dispatched into the controller.
type Command int

const (
	CommandStart Command = iota
	CommandReset
	CommandToggleSound
	CommandToggleAuto
	CommandDifficultyUp
	CommandDifficultyDown
)

func (cmd Command) String() string {
	switch cmd {
	case CommandStart:
		return "start"
	case CommandReset:
		return "reset"
	case CommandToggleSound:
		return "toggle-sound"
	case CommandToggleAuto:
		return "toggle-auto"
	case CommandDifficultyUp:
		return "difficulty-up"
	case CommandDifficultyDown:
		return "difficulty-down"
	default:
		return fmt.Sprintf("command(%d)", int(cmd))
	}
}

// Commands extracts the commands requested by one frame of input, in a fixed order.
// Reset comes before Start so pressing both in one frame begins a fresh run.
func Commands(in input.Input) []Command {
	var cmds []Command
	if in.Reset {
		cmds = append(cmds, CommandReset)
	}
	if in.ToggleSound {
		cmds = append(cmds, CommandToggleSound)
	}
	if in.ToggleAuto {
		cmds = append(cmds, CommandToggleAuto)
	}
	if in.DifficultyUp {
		cmds = append(cmds, CommandDifficultyUp)
	}
	if in.DifficultyDown {
		cmds = append(cmds, CommandDifficultyDown)
	}
	if in.Start {
		cmds = append(cmds, CommandStart)
	}
	return cmds
}

// Dispatch runs a single command. Only Reset can fail, when the best score
// cannot be reloaded.
func (c *Controller) Dispatch(cmd Command) error {
	switch cmd {
	case CommandStart:
		c.Start()
	case CommandReset:
		return c.Reset()
	case CommandToggleSound:
		c.ToggleSound()
	case CommandToggleAuto:
		c.ToggleAutoDifficulty()
	case CommandDifficultyUp:
		c.AdjustDifficulty(DifficultyStep)
	case CommandDifficultyDown:
		c.AdjustDifficulty(-DifficultyStep)
	default:
		return fmt.Errorf("unknown command %v", cmd)
	}
	return nil
}
