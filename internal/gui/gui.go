// Package gui runs the game in an ebiten window, which is also how it runs
// in the browser when compiled to WebAssembly.
package gui

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/wifihunt/internal/config"
	"github.com/tomz197/wifihunt/internal/game"
	"github.com/tomz197/wifihunt/internal/input"
)

// keymap lists the physical keys the game listens to. Quit keys are left
// out: a browser tab is closed, not quit.
var keymap = []struct {
	key   ebiten.Key
	event input.Key
	text  bool // Also live while a password prompt is open
}{
	{ebiten.KeyArrowUp, input.KeyUp, false},
	{ebiten.KeyArrowDown, input.KeyDown, false},
	{ebiten.KeyArrowLeft, input.KeyLeft, false},
	{ebiten.KeyArrowRight, input.KeyRight, false},
	{ebiten.KeyW, input.KeyW, false},
	{ebiten.KeyA, input.KeyA, false},
	{ebiten.KeyD, input.KeyD, false},
	{ebiten.KeyP, input.KeyP, false},
	{ebiten.KeyN, input.KeyN, false},
	{ebiten.KeyH, input.KeyH, false},
	{ebiten.KeyY, input.KeyY, false},
	{ebiten.KeyEnter, input.KeyEnter, true},
	{ebiten.KeyNumpadEnter, input.KeyEnter, true},
	{ebiten.KeyEscape, input.KeyEscape, true},
	{ebiten.KeyBackspace, input.KeyBackspace, true},
}

// Game adapts the simulation to ebiten. One Update is one fixed step, so
// the TPS must be set to config.FPS.
type Game struct {
	game   *game.Game
	logger *log.Logger
	face   *text.GoXFace

	width, height int
	chars         []rune
}

// New creates a window-backed game. The logger is also handed to the
// simulation.
func New(logger *log.Logger, opts ...game.Option) *Game {
	opts = append([]game.Option{game.WithLogger(logger)}, opts...)
	return &Game{
		game:   game.New(opts...),
		logger: logger,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update dispatches this tick's key events, then advances one step.
func (g *Game) Update() error {
	for _, ev := range g.events() {
		g.game.HandleEvent(ev)
	}
	g.game.Step()
	return nil
}

// events collects the key events that fire on this tick. While a password
// prompt is open, printable keys arrive as typed characters instead.
func (g *Game) events() []input.Event {
	typing := false
	if d := g.game.Dialog(); d != nil && d.Kind == game.DialogPrompt {
		typing = true
	}

	var events []input.Event
	for _, m := range keymap {
		if typing && !m.text {
			continue
		}
		if input.Repeats(inpututil.KeyPressDuration(m.key), config.KeyRepeatDelay, config.KeyRepeatInterval) {
			events = append(events, input.Event{Key: m.event})
		}
	}

	if typing {
		g.chars = ebiten.AppendInputChars(g.chars[:0])
		for _, r := range g.chars {
			events = append(events, input.Event{Key: input.KeyForRune(r), Rune: r})
		}
	}
	return events
}

// Layout makes the canvas fill the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.logger.Debug("layout", "width", outsideWidth, "height", outsideHeight)
	}
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
