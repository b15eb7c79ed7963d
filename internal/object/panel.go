package object

import (
	"github.com/tomz197/wifihunt/internal/draw"
	"github.com/tomz197/wifihunt/internal/game"
)

// Panel draws a game.Box centred on the screen.
type Panel struct {
	Box game.Box
}

type panelLine struct {
	text  string
	style draw.Painter
}

func (p Panel) lines() []panelLine {
	var lines []panelLine
	if p.Box.Title != "" {
		lines = append(lines, panelLine{p.Box.Title, styleTitle}, panelLine{"", stylePanel})
	}
	for i, text := range p.Box.Lines {
		switch {
		case p.Box.Selected < 0:
			lines = append(lines, panelLine{text, stylePanel})
		case i == p.Box.Selected:
			lines = append(lines, panelLine{"▶ " + text, styleSelected})
		default:
			lines = append(lines, panelLine{"  " + text, stylePanel})
		}
	}
	if p.Box.Footer != "" {
		lines = append(lines, panelLine{"", stylePanel}, panelLine{p.Box.Footer, styleFooter})
	}
	return lines
}

// Draw fills the box background, frames it and writes the lines inside
// with one cell of padding.
func (p Panel) Draw(ctx DrawContext) error {
	lines := p.lines()

	inner := 0
	for _, l := range lines {
		inner = max(inner, draw.TextWidth(l.text))
	}
	width := min(inner+4, ctx.Width)
	inner = max(width-4, 0)
	height := min(len(lines)+4, ctx.Height)

	col := (ctx.Width-width)/2 + 1
	row := (ctx.Height-height)/2 + 1

	draw.FillRect(ctx.Writer, col, row, width, height, stylePanel)
	draw.Frame(ctx.Writer, col, row, width, height, stylePanel)
	for i, l := range lines {
		if i >= height-4 {
			break
		}
		ctx.Writer.WriteAt(col+2, row+2+i, l.style.Sprint(draw.PadRight(l.text, inner)))
	}
	return nil
}
