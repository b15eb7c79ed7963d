package loop

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wifihunt/internal/draw"
	"github.com/tomz197/wifihunt/internal/game"
)

// State holds one terminal session: the game, the drawing surface and the
// fixed-step clock.
type State struct {
	Game    *game.Game
	Canvas  *draw.Canvas
	Logger  *log.Logger
	Width   int  // Terminal columns
	Height  int  // Terminal rows
	Running bool // Session loop running

	termSizeFunc draw.TermSizeFunc
	pending      time.Duration // Simulated time not yet stepped
}

// NewState creates a session with a fresh game.
func NewState(opts Options) *State {
	gameOpts := append([]game.Option{game.WithLogger(opts.Logger)}, opts.GameOptions...)
	return &State{
		Game:         game.New(gameOpts...),
		Canvas:       draw.NewCanvas(0, 0),
		Logger:       opts.Logger,
		Running:      true,
		termSizeFunc: opts.TermSizeFunc,
	}
}

func (s *State) accumulate(d time.Duration) {
	s.pending += d
}
