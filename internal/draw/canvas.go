package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/tomz197/wifihunt/internal/physics"
)

// Point is a position in canvas pixel space.
type Point = physics.Point

// Canvas is a pixel buffer drawn with half-block characters, so each
// terminal cell holds two pixels stacked vertically. Pixel (0, 0) is the
// top-left half of the top-left cell.
type Canvas struct {
	cols   int
	rows   int
	pixels []bool // [y*cols + x], y in [0, rows*2)

	renderBuf strings.Builder
	crossings []float64 // Scanline scratch for fill
}

// NewCanvas creates a canvas covering cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the covered area, discarding the pixels if it changed.
func (c *Canvas) Resize(cols, rows int) {
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.pixels = make([]bool, c.cols*c.rows*2)
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.cols }

// Height returns the canvas height in pixels, twice the row count.
func (c *Canvas) Height() int { return c.rows * 2 }

// Plot sets one pixel. Out-of-bounds pixels are ignored.
func (c *Canvas) Plot(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.rows*2 {
		c.pixels[y*c.cols+x] = true
	}
}

// IsSet reports whether a pixel is set.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows*2 {
		return false
	}
	return c.pixels[y*c.cols+x]
}

// Line draws a line between two points using Bresenham's algorithm.
func (c *Canvas) Line(a, b Point) {
	x1, y1 := int(math.Round(a.X)), int(math.Round(a.Y))
	x2, y2 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.Plot(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws the outline of a closed polygon, filling it first when
// filled is set.
func (c *Canvas) Polygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fill(points)
	}
	for i := range points {
		c.Line(points[i], points[(i+1)%len(points)])
	}
}

// fill paints the polygon interior one scanline at a time, sampling at
// pixel centres.
func (c *Canvas) fill(points []Point) {
	top, bottom := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		top = math.Min(top, p.Y)
		bottom = math.Max(bottom, p.Y)
	}

	for y := int(math.Floor(top)); y <= int(math.Ceil(bottom)); y++ {
		scan := float64(y) + 0.5
		c.crossings = c.crossings[:0]
		for i, a := range points {
			b := points[(i+1)%len(points)]
			if (a.Y <= scan) != (b.Y <= scan) {
				t := (scan - a.Y) / (b.Y - a.Y)
				c.crossings = append(c.crossings, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(c.crossings)
		for i := 0; i+1 < len(c.crossings); i += 2 {
			for x := int(math.Ceil(c.crossings[i])); x <= int(math.Floor(c.crossings[i+1])); x++ {
				c.Plot(x, y)
			}
		}
	}
}

// Render writes every set cell to w as a half-block character painted
// with p. Empty cells are skipped so text already on screen survives.
func (c *Canvas) Render(w io.Writer, p Painter) error {
	c.renderBuf.Reset()
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			var ch rune
			switch top, bottom := c.IsSet(col, row*2), c.IsSet(col, row*2+1); {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%s", row+1, col+1, p.Sprint(string(ch)))
		}
	}
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}
