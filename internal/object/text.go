package object

import "github.com/tomz197/wifihunt/internal/draw"

// Text is a single line of text at a 1-based terminal position.
type Text struct {
	Col   int
	Row   int
	Value string
	Style draw.Painter // nil draws unstyled
}

// Centred returns text positioned in the middle of a line width columns wide.
func Centred(row, width int, value string, style draw.Painter) Text {
	return Text{
		Col:   (width-draw.TextWidth(value))/2 + 1,
		Row:   row,
		Value: value,
		Style: style,
	}
}

// Draw writes the text at its position using ANSI cursor movement.
func (t Text) Draw(ctx DrawContext) error {
	if t.Value == "" {
		return nil
	}
	style := t.Style
	if style == nil {
		style = draw.Plain
	}
	ctx.Writer.WriteAt(t.Col, t.Row, ctx.paint(style).Sprint(t.Value))
	return nil
}
