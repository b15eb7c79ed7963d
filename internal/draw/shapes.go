package draw

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Painter styles a piece of text for the terminal. gookit's color.Style,
// color.RGBColor and *color.RGBStyle all satisfy it.
type Painter interface {
	Sprint(a ...any) string
}

// plain is a Painter that leaves text unstyled.
type plain struct{}

func (plain) Sprint(a ...any) string { return fmt.Sprint(a...) }

// Plain leaves text as it is.
var Plain Painter = plain{}

// TextWidth returns the number of terminal columns s occupies.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to fit in width columns.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to exactly width columns, truncating if
// it is too long.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return s + strings.Repeat(" ", max(width-TextWidth(s), 0))
}

// FillRect paints a width x height block of spaces with its top-left
// corner at (col, row).
func FillRect(cw *ChunkWriter, col, row, width, height int, p Painter) {
	if width <= 0 {
		return
	}
	blank := p.Sprint(strings.Repeat(" ", width))
	for r := row; r < row+height; r++ {
		cw.WriteAt(col, r, blank)
	}
}

// Frame draws a single-line box outline with its top-left corner at
// (col, row). The box must be at least 2x2.
func Frame(cw *ChunkWriter, col, row, width, height int, p Painter) {
	if width < 2 || height < 2 {
		return
	}
	inner := strings.Repeat("─", width-2)
	cw.WriteAt(col, row, p.Sprint("┌"+inner+"┐"))
	for r := row + 1; r < row+height-1; r++ {
		cw.WriteAt(col, r, p.Sprint("│"))
		cw.WriteAt(col+width-1, r, p.Sprint("│"))
	}
	cw.WriteAt(col, row+height-1, p.Sprint("└"+inner+"┘"))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
