// Package object holds the pieces the terminal frontend draws each frame:
// the HUD readouts, the player marker and the centred panels.
package object

import (
	"github.com/gookit/color"

	"github.com/tomz197/wifihunt/internal/draw"
	"github.com/tomz197/wifihunt/internal/game"
)

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas      // Half-block canvas for shapes
	Writer *draw.ChunkWriter // Frame buffer for text
	View   game.View         // State being drawn
	Width  int               // Terminal columns
	Height int               // Terminal rows
	Dimmed bool              // A panel covers the play field
}

// Object is something drawn once per frame.
type Object interface {
	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}

var (
	styleMuted    = color.Style{color.FgGray}
	styleFrame    = color.Style{color.FgGray}
	styleMoney    = color.RGB(194, 163, 10)
	styleToast    = color.Style{color.FgYellow, color.OpBold}
	stylePlayer   = color.Style{color.FgCyan}
	stylePanel    = color.NewRGBStyle(color.RGB(255, 255, 255), color.RGB(36, 41, 51))
	styleSelected = color.NewRGBStyle(color.RGB(36, 41, 51), color.RGB(255, 255, 255))
	styleTitle    = color.NewRGBStyle(color.RGB(255, 214, 102), color.RGB(36, 41, 51))
	styleFooter   = color.NewRGBStyle(color.RGB(150, 156, 166), color.RGB(36, 41, 51))
)

// Paints used when the canvas is rendered, normally and under a panel.
var (
	PlayerStyle draw.Painter = stylePlayer
	MutedStyle  draw.Painter = styleMuted
)

// paint returns p, or a muted style while a panel is open.
func (ctx DrawContext) paint(p draw.Painter) draw.Painter {
	if ctx.Dimmed {
		return styleMuted
	}
	return p
}

// Left margin and row layout of the HUD, in terminal cells.
const (
	hudCol        = 3
	rowBattery    = 2
	rowSignal     = 4
	rowMoney      = 6
	rowGoals      = 8
	rowSpeeds     = 11
	rowHeading    = 14
	batteryCells  = 10
	playerSize    = 5.0 // Pixels from centre to nose
	playerMarginY = 7.0 // Pixels between the player centre and the bottom edge
)

// HUD returns the readouts and player marker for one frame, in draw order.
func HUD() []Object {
	return []Object{
		Battery{Col: hudCol, Row: rowBattery},
		Signal{Col: hudCol, Row: rowSignal},
		Money{Col: hudCol, Row: rowMoney},
		Goals{Col: hudCol, Row: rowGoals},
		Speeds{Col: hudCol, Row: rowSpeeds},
		Heading{Col: hudCol, Row: rowHeading},
		Hint{},
		Toast{},
		Player{},
	}
}

// Panels returns the centred boxes for the view, bottom first.
func Panels(v game.View) []Object {
	var panels []Object
	for _, box := range v.Boxes() {
		panels = append(panels, Panel{Box: box})
	}
	return panels
}
