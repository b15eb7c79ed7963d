package object

import (
	"math"

	"github.com/tomz197/wifihunt/internal/draw"
	"github.com/tomz197/wifihunt/internal/physics"
)

// Player is the hunter, drawn at the bottom centre as a triangle pointing
// along the heading. The plane scrolls around it, so it never moves.
type Player struct{}

// Draw plots the triangle onto the canvas.
func (Player) Draw(ctx DrawContext) error {
	centre := draw.Point{
		X: float64(ctx.Canvas.Width()) / 2,
		Y: float64(ctx.Canvas.Height()) - playerMarginY,
	}
	ctx.Canvas.Polygon(Triangle(centre, float64(ctx.View.Heading), playerSize), true)
	return nil
}

// Triangle returns the vertices of a ship-like triangle around centre with
// its nose size pixels away in the heading direction. Heading follows the
// plane's convention (90 is up), while canvas y grows downwards.
func Triangle(centre draw.Point, heading, size float64) []draw.Point {
	nose := physics.ToRadians(heading)
	left := nose + 2.5 // ~143 degrees
	right := nose - 2.5

	vertex := func(angle, length float64) draw.Point {
		return draw.Point{
			X: centre.X + math.Cos(angle)*length,
			Y: centre.Y - math.Sin(angle)*length,
		}
	}
	return []draw.Point{
		vertex(nose, size),
		vertex(left, size*0.7),
		vertex(right, size*0.7),
	}
}
