package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputDirections(t *testing.T) {
	s := newStream(DefaultHoldDuration)
	now := time.Unix(100, 0)

	feed(s, "wd")
	in := readInputAt(s, now)
	if !in.Up || !in.Right {
		t.Fatalf("expected up+right held, got %+v", in)
	}
	if in.Down || in.Left {
		t.Fatalf("unexpected down/left: %+v", in)
	}

	// Still held inside the hold window without new bytes.
	in = readInputAt(s, now.Add(DefaultHoldDuration/2))
	if !in.Up || !in.Right {
		t.Fatalf("expected keys held within hold window, got %+v", in)
	}

	// Released once the window passes.
	in = readInputAt(s, now.Add(DefaultHoldDuration))
	if in.Up || in.Right {
		t.Fatalf("expected keys released after hold window, got %+v", in)
	}
}

func TestReadInputArrowSequences(t *testing.T) {
	s := newStream(DefaultHoldDuration)
	now := time.Unix(100, 0)

	feed(s, "\x1b[A\x1b[D")
	in := readInputAt(s, now)
	if !in.Up || !in.Left {
		t.Fatalf("expected arrow up+left, got %+v", in)
	}
	if in.Start || in.Quit {
		t.Fatalf("arrow bytes must not trigger commands: %+v", in)
	}
}

func TestReadInputCommandsAreOneShot(t *testing.T) {
	s := newStream(DefaultHoldDuration)
	now := time.Unix(100, 0)

	feed(s, " rmt+-")
	in := readInputAt(s, now)
	if !in.Start || !in.Reset || !in.ToggleSound || !in.ToggleAuto || !in.DifficultyUp || !in.DifficultyDown {
		t.Fatalf("expected every command set, got %+v", in)
	}

	in = readInputAt(s, now.Add(time.Millisecond))
	if in.Start || in.Reset || in.ToggleSound || in.ToggleAuto {
		t.Fatalf("commands must not repeat on the next frame: %+v", in)
	}
}

func TestAxisCancelsOpposites(t *testing.T) {
	dx, dy := Input{Up: true, Down: true, Left: true}.Axis()
	if dx != -1 || dy != 0 {
		t.Errorf("Axis = (%f, %f), want (-1, 0)", dx, dy)
	}
	dx, dy = Input{Left: true, Right: true}.Axis()
	if dx != 0 || dy != 0 {
		t.Errorf("Axis = (%f, %f), want (0, 0)", dx, dy)
	}
}

func TestResetKeyInput(t *testing.T) {
	s := newStream(DefaultHoldDuration)
	now := time.Unix(100, 0)

	feed(s, "s")
	readInputAt(s, now)
	ResetKeyInput(s)

	if in := readInputAt(s, now); in.Down {
		t.Fatalf("expected held keys cleared, got %+v", in)
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if in := ReadInput(s); in.Quit {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("expected Quit once the reader hits EOF")
}
