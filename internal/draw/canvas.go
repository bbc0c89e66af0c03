package draw

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ColorReset restores the terminal's default colors.
const ColorReset = "\033[0m"

// cell is what one terminal cell shows: a glyph and its colors.
type cell struct {
	ch    rune
	fg    color.RGBA
	bg    color.RGBA // Zero alpha means the terminal default background
	dirty bool       // Must be rewritten on the next render
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
// Each sub-pixel carries a color; a zero alpha marks it empty.
// Render only writes cells that changed since the previous render.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]
	prev           []cell       // Cells written by the previous render

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Buffer for batching render output
}

// NewCanvas creates a canvas for the given terminal dimensions.
// The canvas has 2x vertical resolution (height*2 sub-pixels).
// No scaling is applied (1:1 mapping).
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.allocate(termWidth, termHeight)
	c.updateScale()
	return c
}

func (c *Canvas) allocate(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]color.RGBA, c.subPixelHeight*termWidth)
	c.prev = make([]cell, termHeight*termWidth)
	c.ForceRedraw()
}

func (c *Canvas) updateScale() {
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.allocate(termWidth, termHeight)
	}
	c.updateScale()
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render rewrite every cell, e.g. after the terminal was cleared.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i].dirty = true
	}
}

// MarkTextDirty marks n cells starting at the 1-based canvas position (col, row)
// so the next Render overwrites text that was drawn on top of the canvas.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	y := row - 1
	if y < 0 || y >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.prev[y*c.termWidth+x].dirty = true
		}
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// Pixel returns the color at sub-pixel (x, y) and whether it is set.
func (c *Canvas) Pixel(x, y int) (color.RGBA, bool) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}, false
	}
	p := c.pixels[y*c.termWidth+x]
	return p, p.A != 0
}

// FillCircle fills a disc given in logical coordinates.
// The disc becomes an ellipse in pixel space when the axes scale differently.
// A disc smaller than one pixel still sets the pixel under its center.
func (c *Canvas) FillCircle(x, y, r float64, col color.RGBA) {
	if col.A == 0 {
		col.A = 0xff
	}

	px := x * c.scaleX
	py := y * c.scaleY
	rx := r * c.scaleX
	ry := r * c.scaleY

	painted := false
	if rx > 0 && ry > 0 {
		yStart := int(math.Floor(py - ry))
		yEnd := int(math.Ceil(py + ry))
		xStart := int(math.Floor(px - rx))
		xEnd := int(math.Ceil(px + rx))

		for iy := yStart; iy <= yEnd; iy++ {
			dy := (float64(iy) + 0.5 - py) / ry
			for ix := xStart; ix <= xEnd; ix++ {
				dx := (float64(ix) + 0.5 - px) / rx
				if dx*dx+dy*dy <= 1 {
					c.setPixel(ix, iy, col)
					painted = true
				}
			}
		}
	}

	if !painted {
		c.setPixel(int(math.Floor(px)), int(math.Floor(py)), col)
	}
}

// cellAt resolves the glyph and colors for terminal cell (col, row).
func (c *Canvas) cellAt(col, row int) cell {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	topSet := top.A != 0
	bottomSet := bottom.A != 0

	switch {
	case topSet && bottomSet && top == bottom:
		return cell{ch: BlockFull, fg: top}
	case topSet && bottomSet:
		return cell{ch: BlockUpperHalf, fg: top, bg: bottom}
	case topSet:
		return cell{ch: BlockUpperHalf, fg: top}
	case bottomSet:
		return cell{ch: BlockLowerHalf, fg: bottom}
	default:
		return cell{ch: BlockEmpty}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using colored half-block characters.
// Only cells that differ from the previous render, or were marked dirty, are written.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			cur := c.cellAt(col, row)
			idx := row*c.termWidth + col
			if old := c.prev[idx]; !old.dirty && old == cur {
				continue
			}
			c.prev[idx] = cur

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			if cur.ch == BlockEmpty {
				c.renderBuf.WriteByte(' ')
				continue
			}
			writeColor(&c.renderBuf, 38, cur.fg)
			if cur.bg.A != 0 {
				writeColor(&c.renderBuf, 48, cur.bg)
			}
			c.renderBuf.WriteRune(cur.ch)
			c.renderBuf.WriteString(ColorReset)
		}
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// writeColor appends a 24-bit SGR color; layer is 38 for foreground, 48 for background.
func writeColor(b *strings.Builder, layer int, col color.RGBA) {
	fmt.Fprintf(b, "\033[%d;2;%d;%d;%dm", layer, col.R, col.G, col.B)
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder

	if hasV {
		line := strings.Repeat("─", c.termWidth)
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			// Side bars span the full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
