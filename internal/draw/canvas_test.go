package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestFillCircleScalesToPixels(t *testing.T) {
	// 80x30 terminal cells -> 80x60 sub-pixels for an 800x600 playfield: 0.1 px per unit.
	c := NewScaledCanvas(80, 30, 800, 600)
	c.FillCircle(400, 300, 50, red)

	if _, ok := c.Pixel(40, 30); !ok {
		t.Fatal("expected center pixel to be set")
	}
	if got, _ := c.Pixel(40, 30); got != red {
		t.Fatalf("center color = %v, want %v", got, red)
	}
	if _, ok := c.Pixel(46, 30); ok {
		t.Fatal("pixel outside the radius should be empty")
	}
	if _, ok := c.Pixel(0, 0); ok {
		t.Fatal("corner pixel should be empty")
	}
}

func TestFillCircleTinyStillVisible(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.FillCircle(123, 456, 1, blue)

	if got, ok := c.Pixel(12, 45); !ok || got != blue {
		t.Fatalf("expected sub-pixel disc at (12, 45), got %v %v", got, ok)
	}
}

func TestFillCircleClipsOffCanvas(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.FillCircle(-50, -50, 3, red) // must not panic
	c.FillCircle(0, 0, 2, red)

	if _, ok := c.Pixel(0, 0); !ok {
		t.Fatal("expected the visible part of a clipped disc to be drawn")
	}
}

func TestClearEmptiesPixels(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillCircle(1, 1, 1, red)
	c.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if _, ok := c.Pixel(x, y); ok {
				t.Fatalf("pixel (%d, %d) still set after Clear", x, y)
			}
		}
	}
}

func TestCellGlyphs(t *testing.T) {
	c := NewCanvas(4, 1)
	c.setPixel(0, 0, red)
	c.setPixel(1, 1, red)
	c.setPixel(2, 0, red)
	c.setPixel(2, 1, red)
	c.setPixel(3, 0, red)
	c.setPixel(3, 1, blue)

	want := []cell{
		{ch: BlockUpperHalf, fg: red},
		{ch: BlockLowerHalf, fg: red},
		{ch: BlockFull, fg: red},
		{ch: BlockUpperHalf, fg: red, bg: blue},
	}
	for col, w := range want {
		if got := c.cellAt(col, 0); got != w {
			t.Errorf("cell %d = %+v, want %+v", col, got, w)
		}
	}
}

func TestRenderWritesOnlyChanges(t *testing.T) {
	c := NewCanvas(4, 2)
	c.setPixel(1, 0, red)

	var first bytes.Buffer
	c.Render(&first)
	if !strings.Contains(first.String(), "\033[38;2;255;0;0m") {
		t.Fatalf("expected 24-bit foreground color, got %q", first.String())
	}
	if !strings.ContainsRune(first.String(), BlockUpperHalf) {
		t.Fatalf("expected upper half block, got %q", first.String())
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", second.String())
	}

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	if third.String() != "\033[1;2H " {
		t.Fatalf("cleared cell should be blanked once, got %q", third.String())
	}

	c.ForceRedraw()
	var fourth bytes.Buffer
	c.Render(&fourth)
	if got := strings.Count(fourth.String(), "H "); got != 8 {
		t.Fatalf("forced redraw wrote %d blank cells, want 8", got)
	}
}

func TestRenderAppliesOffset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetOffset(10, 5)
	c.setPixel(0, 0, red)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.HasPrefix(buf.String(), "\033[6;11H") {
		t.Fatalf("expected offset cursor move, got %q", buf.String())
	}
}

func TestMarkTextDirty(t *testing.T) {
	c := NewCanvas(5, 2)
	var buf bytes.Buffer
	c.Render(&buf)

	c.MarkTextDirty(2, 2, 3)
	buf.Reset()
	c.Render(&buf)
	if got := strings.Count(buf.String(), "H "); got != 3 {
		t.Fatalf("rewrote %d cells, want 3: %q", got, buf.String())
	}

	c.MarkTextDirty(0, 9, 3) // off canvas, ignored
}

func TestResizeKeepsLogicalSize(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.Resize(160, 60)

	if c.TerminalWidth() != 160 || c.TerminalHeight() != 60 {
		t.Fatalf("terminal size = %dx%d", c.TerminalWidth(), c.TerminalHeight())
	}
	if c.LogicalWidth() != 800 || c.LogicalHeight() != 600 {
		t.Fatalf("logical size changed: %fx%f", c.LogicalWidth(), c.LogicalHeight())
	}
	col, row := c.LogicalToTerminal(400, 300)
	if col != 81 || row != 31 {
		t.Fatalf("LogicalToTerminal = (%d, %d), want (81, 31)", col, row)
	}
}

func TestRenderBorder(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetOffset(2, 1)

	var buf bytes.Buffer
	c.RenderBorder(&buf)
	out := buf.String()
	for _, want := range []string{"┌───┐", "└───┘", "│"} {
		if !strings.Contains(out, want) {
			t.Errorf("border output missing %q: %q", want, out)
		}
	}

	c.SetOffset(0, 0)
	buf.Reset()
	c.RenderBorder(&buf)
	if buf.Len() != 0 {
		t.Fatalf("no border expected without offset, got %q", buf.String())
	}
}

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 3)
	cw.WriteAt(1, 1, "hi")
	cw.WriteString(strings.Repeat("x", 3*maxChunkSize))

	if out.Len() != 0 {
		t.Fatal("nothing should be written before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\033[4;3Hhi") {
		t.Fatalf("unexpected prefix %q", out.String()[:10])
	}
	if out.Len() != len("\033[4;3Hhi")+3*maxChunkSize {
		t.Fatalf("flushed %d bytes", out.Len())
	}
}
