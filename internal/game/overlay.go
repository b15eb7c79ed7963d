package game

import (
	"github.com/tomz197/wifihunt/internal/config"
	"github.com/tomz197/wifihunt/internal/input"
	"github.com/tomz197/wifihunt/internal/locale"
)

// Overlay is the panel drawn over the play field.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayPaused
	OverlayNetworkList
	OverlayHelp
)

// String returns the overlay's name for logs.
func (o Overlay) String() string {
	switch o {
	case OverlayPaused:
		return "paused"
	case OverlayNetworkList:
		return "networks"
	case OverlayHelp:
		return "help"
	default:
		return "none"
	}
}

var movementKeys = []input.Key{
	input.KeyUp, input.KeyW,
	input.KeyLeft, input.KeyA,
	input.KeyRight, input.KeyD,
}

var listKeys = []input.Key{input.KeyDown, input.KeyUp, input.KeyEnter}

// helpKeys are the locale keys of the controls summary, in display order.
var helpKeys = []string{
	"HELP_FORWARD",
	"HELP_RIGHT",
	"HELP_LEFT",
	"HELP_HELP",
	"HELP_NETWORKS",
	"HELP_PAUSE",
	"HELP_QUIT",
}

// Overlay returns the open panel.
func (g *Game) Overlay() Overlay { return g.overlay }

// Cursor returns the selected network list row.
func (g *Game) Cursor() int { return g.cursor }

func (g *Game) bindMovementKeys() {
	g.bindings.Bind(g.moveForward, input.KeyUp, input.KeyW)
	g.bindings.Bind(g.turnLeft, input.KeyLeft, input.KeyA)
	g.bindings.Bind(g.turnRight, input.KeyRight, input.KeyD)
}

func (g *Game) moveForward() {
	g.player.MoveForward(g.settings.StepDistance)
	g.logger.Debug("moved",
		"x", g.player.Position.X,
		"y", g.player.Position.Y,
		"heading", g.player.Heading,
	)
	if g.player.Travelled >= config.GlobetrotterTrip {
		g.unlock(AchGlobetrotter)
	}
}

func (g *Game) turnLeft()  { g.player.TurnLeft() }
func (g *Game) turnRight() { g.player.TurnRight() }

func (g *Game) togglePause() {
	if g.overlay != OverlayPaused {
		g.pause()
	} else {
		g.unpause()
	}
}

func (g *Game) toggleNetworkList() {
	if g.overlay != OverlayNetworkList {
		g.showNetworkList()
	} else {
		g.hideNetworkList()
	}
}

func (g *Game) toggleHelp() {
	if g.overlay != OverlayHelp {
		g.showHelp()
	} else {
		g.hideHelp()
	}
}

func (g *Game) pause() {
	g.overlay = OverlayPaused
	g.bindings.Unbind(movementKeys...)
	g.bindings.Unbind(input.KeyN, input.KeyH)
	g.logger.Debug("paused")
}

func (g *Game) unpause() {
	g.overlay = OverlayNone
	g.bindMovementKeys()
	g.bindings.Bind(g.toggleNetworkList, input.KeyN)
	g.bindings.Bind(g.toggleHelp, input.KeyH)
	g.logger.Debug("unpaused")
}

func (g *Game) showNetworkList() {
	g.overlay = OverlayNetworkList
	g.bindings.Unbind(movementKeys...)
	g.bindings.Unbind(input.KeyP, input.KeyH)

	g.cursor = 0
	g.bindings.Bind(g.cursorDown, input.KeyDown)
	g.bindings.Bind(g.cursorUp, input.KeyUp)
	g.bindings.Bind(g.joinSelected, input.KeyEnter)
	g.logger.Debug("network list opened", "available", len(g.Available()))
}

func (g *Game) hideNetworkList() {
	g.overlay = OverlayNone
	g.dialog = nil
	g.bindings.Unbind(listKeys...)

	g.bindMovementKeys()
	g.bindings.Bind(g.togglePause, input.KeyP)
	g.bindings.Bind(g.toggleHelp, input.KeyH)
	g.logger.Debug("network list closed")
}

func (g *Game) showHelp() {
	g.overlay = OverlayHelp
	g.bindings.Unbind(movementKeys...)
	g.bindings.Unbind(input.KeyN, input.KeyP)

	g.logger.Debug(locale.Get("TITLE"))
	for _, key := range helpKeys {
		g.logger.Debug(locale.Get(key))
	}
}

func (g *Game) hideHelp() {
	g.overlay = OverlayNone
	g.bindMovementKeys()
	g.bindings.Bind(g.toggleNetworkList, input.KeyN)
	g.bindings.Bind(g.togglePause, input.KeyP)
}

func (g *Game) cursorDown() {
	if g.cursor < len(g.Available())-1 {
		g.cursor++
	}
}

func (g *Game) cursorUp() {
	if g.cursor > 0 {
		g.cursor--
	}
}
