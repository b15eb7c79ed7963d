package game

import (
	"math"
	"testing"

	"github.com/tomz197/wifihunt/internal/input"
)

func TestPlayerTurnWraps(t *testing.T) {
	p := Player{Heading: 359}
	p.TurnLeft()
	if p.Heading != 0 {
		t.Fatalf("left from 359: got=%d want=0", p.Heading)
	}

	p.TurnRight()
	if p.Heading != 359 {
		t.Fatalf("right from 0: got=%d want=359", p.Heading)
	}
}

func TestPlayerMoveForward(t *testing.T) {
	p := Player{Heading: 90}
	p.MoveForward(1)

	if math.Abs(p.Position.X) > 1e-9 || math.Abs(p.Position.Y-1) > 1e-9 {
		t.Fatalf("position at heading 90: got=%+v want=(0, 1)", p.Position)
	}

	p.Heading = 0
	p.MoveForward(2)
	if math.Abs(p.Position.X-2) > 1e-9 || math.Abs(p.Position.Y-1) > 1e-9 {
		t.Fatalf("position after heading 0: got=%+v want=(2, 1)", p.Position)
	}
	if p.Travelled != 3 {
		t.Fatalf("travelled: got=%f want=3", p.Travelled)
	}
}

func TestMovementKeys(t *testing.T) {
	g := newTestGame(t)

	press(g, input.KeyLeft, input.KeyA)
	if got := g.Player().Heading; got != 92 {
		t.Fatalf("heading after two left turns: got=%d want=92", got)
	}
	press(g, input.KeyRight, input.KeyD, input.KeyD)
	if got := g.Player().Heading; got != 89 {
		t.Fatalf("heading after three right turns: got=%d want=89", got)
	}

	g = newTestGame(t)
	press(g, input.KeyUp, input.KeyW)
	if got := g.Player().Position.Y; math.Abs(got-2) > 1e-9 {
		t.Fatalf("y after two steps: got=%f want=2", got)
	}
}

func TestRightTurnsWrapPastZero(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 91; i++ {
		press(g, input.KeyRight)
	}
	if got := g.Player().Heading; got != 359 {
		t.Fatalf("heading after 91 right turns from 90: got=%d want=359", got)
	}
}
