// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// DefaultHoldDuration is how long a direction is considered "held" after its last byte.
// Terminals never report key release, so auto-repeat keeps a held key alive.
const DefaultHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
// Directions are levels sampled once per frame; the remaining flags are
// one-shot commands seen since the previous frame.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Start          bool
	Reset          bool
	ToggleSound    bool
	ToggleAuto     bool
	DifficultyUp   bool
	DifficultyDown bool
	Quit           bool

	Pressed []byte
}

// Axis returns the raw movement direction in {-1, 0, 1} per axis.
// Opposite keys held together cancel out.
func (in Input) Axis() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}

// keyState tracks the last time each direction was pressed.
type keyState struct {
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	hold   time.Duration
	closed bool
}

func newStream(hold time.Duration) *Stream {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Stream{
		ch:   make(chan byte, 128),
		hold: hold,
	}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	return StartStreamWithHold(r, DefaultHoldDuration)
}

// StartStreamWithHold is StartStream with a custom direction hold window.
func StartStreamWithHold(r *bufio.Reader, hold time.Duration) *Stream {
	s := newStream(hold)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	input := Input{Pressed: buf, Quit: s.closed}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByte(&s.state, &input, b, now)
	}

	input.Up = now.Sub(s.state.up) < s.hold
	input.Down = now.Sub(s.state.down) < s.hold
	input.Left = now.Sub(s.state.left) < s.hold
	input.Right = now.Sub(s.state.right) < s.hold

	return input
}

// applyByte updates direction timestamps and one-shot commands for a single byte.
func applyByte(state *keyState, input *Input, b byte, now time.Time) {
	switch b {
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case ' ', '\n', '\r':
		input.Start = true
	case 'r', 'R':
		input.Reset = true
	case 'm', 'M':
		input.ToggleSound = true
	case 't', 'T':
		input.ToggleAuto = true
	case '+', '=':
		input.DifficultyUp = true
	case '-', '_':
		input.DifficultyDown = true
	case 'q', 'Q', '\x03':
		input.Quit = true
	}
}

// ResetKeyInput forgets all held directions so a new run starts from rest.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}
