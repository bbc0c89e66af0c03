package audio

import (
	"io"
	"time"
)

// Bell rings the terminal bell instead of synthesizing audio.
// Used for remote sessions where the server's speaker is useless.
type Bell struct {
	W io.Writer
}

// Play writes a BEL byte. Frequency, duration and volume are ignored.
func (b Bell) Play(_ float64, _ time.Duration, _ float64) error {
	_, err := io.WriteString(b.W, "\a")
	return err
}
