package client

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/bulletdodge/internal/game"
	"github.com/tomz197/bulletdodge/internal/loop/config"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	s := c.controller.Session()

	// On phase, inactivity or shutdown transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	if s.Phase != c.state.prevPhase || c.state.isInactive != c.state.wasInactive ||
		c.state.ShuttingDown != c.state.wasShuttingDown {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevPhase = s.Phase
		c.state.wasInactive = c.state.isInactive
		c.state.wasShuttingDown = c.state.ShuttingDown
	}

	if err := game.Render(s, c.canvas); err != nil {
		return err
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI()

	return c.chunkWriter.Flush()
}

// drawUI draws the HUD and the overlay for the current screen.
func (c *Client) drawUI() {
	width := c.canvas.TerminalWidth()
	centerY := config.HUDTopRows + c.canvas.TerminalHeight()/2

	c.drawHUD(width)

	if c.state.ShuttingDown {
		c.drawShutdownScreen(centerY)
		return
	}
	if c.state.isInactive {
		c.drawInactivityScreen(centerY)
		return
	}

	switch c.controller.Session().Phase {
	case game.PhaseIdle:
		c.drawStartScreen(centerY)
	case game.PhaseOver:
		c.drawDeadScreen(centerY)
	}
}

// drawHUD draws the status line above the playfield and the key help below it.
// Both lines are padded to the full width so shorter values overwrite longer ones.
func (c *Client) drawHUD(width int) {
	s := c.controller.Session()
	cw := c.chunkWriter

	left := fmt.Sprintf(" Time %s  Best %s  %s", c.controller.ScoreText(), c.controller.BestText(), s.Phase)
	right := fmt.Sprintf("Sound %s  Auto %s  Difficulty %.2f ", onOff(s.SoundOn), onOff(s.AutoDifficulty), s.Difficulty)
	cw.WriteAt(1, 1, hudLine(left, right, width))

	help := " WASD/arrows move  Space start  R reset  M sound  T auto  +/- difficulty  Q quit"
	online := ""
	if n := c.server.Players(); n > 1 {
		online = fmt.Sprintf("%d online ", n)
	}
	cw.WriteAt(1, config.HUDTopRows+c.canvas.TerminalHeight()+1, hudLine(help, online, width))
}

// hudLine places left and right in a line of exactly width cells.
// The right part is dropped first, then left is truncated.
func hudLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		right = ""
		gap = width - utf8.RuneCountInString(left)
	}
	if gap < 0 {
		return truncate(left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}

func onOff(b bool) string {
	if b {
		return "on "
	}
	return "off"
}

// writeCentered writes s centered on the given row of the UI and marks the cells
// it covers so the canvas repaints them once the text goes away.
func (c *Client) writeCentered(row int, s string) {
	width := c.canvas.TerminalWidth()
	s = truncate(s, width)
	n := utf8.RuneCountInString(s)
	col := width/2 - n/2 + 1
	if col < 1 {
		col = 1
	}
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row-config.HUDTopRows, n)
}

// writeBlinking writes a prompt that blinks; while hidden it is blanked out.
func (c *Client) writeBlinking(row int, s string) {
	if c.now().UnixMilli()/config.PromptBlinkPeriod.Milliseconds()%2 == 0 {
		c.writeCentered(row, s)
		return
	}
	c.writeCentered(row, strings.Repeat(" ", utf8.RuneCountInString(s)))
}

// titleArt is the game title (figlet "small" font).
var titleArt = []string{
	` ___      _ _     _     ___          _           `,
	`| _ )_  _| | |___| |_  |   \ ___  __| |__ _ ___  `,
	`| _ \ || | | / -_)  _| | |) / _ \/ _' / _' / -_) `,
	`|___/\_,_|_|_\___|\__| |___/\___/\__,_\__, \___| `,
	`                                      |___/      `,
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerY int) {
	top := centerY - 7
	if c.canvas.TerminalWidth() >= len(titleArt[0]) {
		for i, line := range titleArt {
			c.writeCentered(top+i, line)
		}
	} else {
		c.writeCentered(top+2, "BULLET DODGE")
	}

	subtitle := "~ Survive as long as you can ~"
	c.writeCentered(top+len(titleArt)+1, subtitle)

	controlsY := top + len(titleArt) + 3
	controlLines := []string{
		"WASD / arrows . . . . Move",
		"SPACE . . . . . . .  Start",
		"R . . . . . . . . .  Reset",
		"M . . . . . . Toggle sound",
		"T . . Toggle auto difficulty",
		"Q . . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(controlsY+i, line)
	}

	c.writeBlinking(controlsY+len(controlLines)+1, ">>  Press SPACE to Start  <<")
}

// drawDeadScreen draws the game over screen.
func (c *Client) drawDeadScreen(centerY int) {
	s := c.controller.Session()
	top := centerY - 4

	c.writeCentered(top, "G A M E   O V E R")
	c.writeCentered(top+2, fmt.Sprintf("You survived %s", c.controller.ScoreText()))
	if s.NewRecord {
		c.writeCentered(top+3, "New best!")
	} else {
		c.writeCentered(top+3, fmt.Sprintf("Best: %s", c.controller.BestText()))
	}
	c.writeBlinking(top+5, ">>  Press R to Reset  <<")
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerY int) {
	remaining := int(c.disconnectIn - c.now().Sub(c.lastInput).Seconds())
	if remaining < 0 {
		remaining = 0
	}

	c.writeCentered(centerY-2, "INACTIVITY WARNING")
	c.writeCentered(centerY, fmt.Sprintf("You will be disconnected in %3d seconds.", remaining))
	c.writeCentered(centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerY int) {
	c.writeCentered(centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerY+2, fmt.Sprintf("Disconnecting in %2d seconds...", remaining))
	c.writeCentered(centerY+4, "Press Q to disconnect now")
}
