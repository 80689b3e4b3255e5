// Package canvas places decoded triples on a character grid and serializes
// it, top row first.
package canvas

import (
	"strings"

	"github.com/Robert-Tyssen/Google-Doc-Secret-Message-Decoder/internal/ir"
)

// Blank fills every cell no triple covers.
const Blank = " "

// Canvas is a (YMax+1) x (XMax+1) grid of cells. Row 0 is the top of the
// message, which is y = YMax in document coordinates.
type Canvas struct {
	bounds ir.Bounds
	cells  [][]string
}

// New allocates a blank canvas. A nil bounds, or one outside
// [0, ir.MaxCoordinate] on either axis, yields a canvas with no rows.
func New(b *ir.Bounds) *Canvas {
	c := &Canvas{}
	if b == nil || !inRange(b.XMax) || !inRange(b.YMax) {
		return c
	}
	c.bounds = *b
	c.cells = make([][]string, b.Height())
	for i := range c.cells {
		row := make([]string, b.Width())
		for j := range row {
			row[j] = Blank
		}
		c.cells[i] = row
	}
	return c
}

func inRange(n int) bool { return n >= 0 && n <= ir.MaxCoordinate }

// Set writes char at document coordinate (x, y). Later writes to the same
// cell replace earlier ones. Coordinates outside the canvas are ignored and
// reported as false.
func (c *Canvas) Set(x, y int, char string) bool {
	if len(c.cells) == 0 || x < 0 || y < 0 || x > c.bounds.XMax || y > c.bounds.YMax {
		return false
	}
	c.cells[c.bounds.YMax-y][x] = char
	return true
}

// At returns the cell at output row and column.
func (c *Canvas) At(row, col int) string {
	return c.cells[row][col]
}

// Rows is the number of output lines.
func (c *Canvas) Rows() int { return len(c.cells) }

// Cols is the number of cells per line.
func (c *Canvas) Cols() int {
	if len(c.cells) == 0 {
		return 0
	}
	return c.bounds.Width()
}

// Lines returns each row joined into a string, top row first.
func (c *Canvas) Lines() []string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = strings.Join(row, "")
	}
	return lines
}

// String joins the lines with newlines and ends with a trailing newline.
// An empty canvas renders as "".
func (c *Canvas) String() string {
	var b strings.Builder
	for _, line := range c.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Draw places every triple of g in order on a new canvas.
func Draw(g *ir.Grid) *Canvas {
	if g.Empty() {
		return New(nil)
	}
	c := New(g.Bounds)
	for _, t := range g.Triples {
		c.Set(t.X, t.Y, t.Char)
	}
	return c
}

// Render is Draw followed by String.
func Render(g *ir.Grid) string {
	return Draw(g).String()
}
