package game

import "github.com/tomz197/wifihunt/internal/physics"

// Player is the hunter's position and facing on the plane.
type Player struct {
	Position  physics.Point
	Heading   int     // Degrees, always in [0, 359]
	Travelled float64 // Total distance moved
}

// MoveForward steps the player along its heading.
func (p *Player) MoveForward(step float64) {
	dx, dy := physics.PolarToCartesian(float64(p.Heading), step)
	p.Position = p.Position.Add(dx, dy)
	p.Travelled += step
}

// TurnLeft rotates one degree counter-clockwise.
func (p *Player) TurnLeft() {
	p.Heading++
	if p.Heading >= 360 {
		p.Heading = 0
	}
}

// TurnRight rotates one degree clockwise.
func (p *Player) TurnRight() {
	p.Heading--
	if p.Heading < 0 {
		p.Heading = 359
	}
}
