package game

import (
	"testing"

	"github.com/tomz197/wifihunt/internal/input"
	"github.com/tomz197/wifihunt/internal/physics"
)

func assertBound(t *testing.T, g *Game, want bool, keys ...input.Key) {
	t.Helper()
	for _, k := range keys {
		if got := g.Bindings().IsBound(k); got != want {
			t.Fatalf("key %v bound: got=%v want=%v", k, got, want)
		}
	}
}

func TestInitialBindings(t *testing.T) {
	g := newTestGame(t)

	assertBound(t, g, true, movementKeys...)
	assertBound(t, g, true, input.KeyP, input.KeyN, input.KeyH)
	assertBound(t, g, false, input.KeyDown, input.KeyEnter)
	if got := g.Bindings().Bound().Size(); got != 9 {
		t.Fatalf("bound keys: got=%d want=9", got)
	}
}

func TestPauseTransitions(t *testing.T) {
	g := newTestGame(t)
	press(g, input.KeyP)

	if g.Overlay() != OverlayPaused {
		t.Fatalf("overlay: got=%v want=%v", g.Overlay(), OverlayPaused)
	}
	assertBound(t, g, false, movementKeys...)
	assertBound(t, g, false, input.KeyN, input.KeyH)
	assertBound(t, g, true, input.KeyP)

	press(g, input.KeyW, input.KeyN, input.KeyH)
	if g.Overlay() != OverlayPaused {
		t.Fatalf("unbound keys changed the overlay: got=%v", g.Overlay())
	}
	if g.Player().Travelled != 0 {
		t.Fatal("player moved while paused")
	}

	press(g, input.KeyP)
	if g.Overlay() != OverlayNone {
		t.Fatalf("overlay after unpause: got=%v want=%v", g.Overlay(), OverlayNone)
	}
	assertBound(t, g, true, movementKeys...)
	assertBound(t, g, true, input.KeyP, input.KeyN, input.KeyH)
}

func TestNetworkListTransitions(t *testing.T) {
	g := newTestGame(t)
	press(g, input.KeyN)

	if g.Overlay() != OverlayNetworkList {
		t.Fatalf("overlay: got=%v want=%v", g.Overlay(), OverlayNetworkList)
	}
	assertBound(t, g, false, input.KeyW, input.KeyA, input.KeyD, input.KeyLeft, input.KeyRight)
	assertBound(t, g, false, input.KeyP, input.KeyH)
	assertBound(t, g, true, input.KeyDown, input.KeyUp, input.KeyEnter, input.KeyN)

	press(g, input.KeyUp)
	if g.Player().Travelled != 0 {
		t.Fatal("Up should move the cursor, not the player, while the list is open")
	}

	press(g, input.KeyN)
	if g.Overlay() != OverlayNone {
		t.Fatalf("overlay after closing: got=%v want=%v", g.Overlay(), OverlayNone)
	}
	assertBound(t, g, false, input.KeyDown, input.KeyEnter)
	assertBound(t, g, true, movementKeys...)
	assertBound(t, g, true, input.KeyP, input.KeyH, input.KeyN)

	press(g, input.KeyUp)
	if g.Player().Travelled != 1 {
		t.Fatalf("Up should move the player again: travelled=%f", g.Player().Travelled)
	}
}

func TestHelpTransitions(t *testing.T) {
	g := newTestGame(t)
	press(g, input.KeyH)

	if g.Overlay() != OverlayHelp {
		t.Fatalf("overlay: got=%v want=%v", g.Overlay(), OverlayHelp)
	}
	assertBound(t, g, false, movementKeys...)
	assertBound(t, g, false, input.KeyN, input.KeyP)
	assertBound(t, g, true, input.KeyH)

	press(g, input.KeyN, input.KeyP)
	if g.Overlay() != OverlayHelp {
		t.Fatalf("N and P should be ignored in help: got=%v", g.Overlay())
	}

	press(g, input.KeyH)
	if g.Overlay() != OverlayNone {
		t.Fatalf("overlay after closing help: got=%v want=%v", g.Overlay(), OverlayNone)
	}
	assertBound(t, g, true, movementKeys...)
	assertBound(t, g, true, input.KeyP, input.KeyN, input.KeyH)
}

func TestHelpDoesNotFreezeBattery(t *testing.T) {
	g := newTestGame(t)
	press(g, input.KeyH)
	step(g, 50)

	if got := g.BatteryLevel(); got >= 100 {
		t.Fatalf("battery should keep draining with help open: got=%f", got)
	}
}

func TestNetworkListCursorBounds(t *testing.T) {
	g := newTestGame(t,
		openAP("one", physics.Point{}, 10, 1),
		openAP("two", physics.Point{}, 10, 1),
		openAP("three", physics.Point{}, 10, 1),
	)
	press(g, input.KeyN)

	press(g, input.KeyDown, input.KeyDown, input.KeyDown)
	if got := g.Cursor(); got != 2 {
		t.Fatalf("cursor after three downs: got=%d want=2", got)
	}
	press(g, input.KeyUp, input.KeyUp, input.KeyUp)
	if got := g.Cursor(); got != 0 {
		t.Fatalf("cursor after three ups: got=%d want=0", got)
	}

	press(g, input.KeyDown, input.KeyN, input.KeyN)
	if got := g.Cursor(); got != 0 {
		t.Fatalf("cursor should reset when the list reopens: got=%d want=0", got)
	}
}

func TestJoinSelectedNetwork(t *testing.T) {
	one := openAP("one", physics.Point{}, 10, 1)
	two := openAP("two", physics.Point{}, 10, 1)
	far := openAP("far", physics.Point{X: 100}, 10, 1)
	g := newTestGame(t, one, far, two)
	press(g, input.KeyN, input.KeyDown, input.KeyEnter)

	if g.Current() != two {
		t.Fatalf("current: got=%v want=two", g.Current())
	}
	if g.Overlay() != OverlayNone {
		t.Fatalf("list should close after joining: got=%v", g.Overlay())
	}
}

func TestEnterOnEmptyListDoesNothing(t *testing.T) {
	g := newTestGame(t, openAP("far", physics.Point{X: 100}, 10, 1))
	press(g, input.KeyN, input.KeyEnter)

	if g.Current() != nil || g.Dialog() != nil {
		t.Fatal("Enter on an empty list should do nothing")
	}
	if g.Overlay() != OverlayNetworkList {
		t.Fatalf("list should stay open: got=%v", g.Overlay())
	}
}
