// Package loop runs WiFi Hunt in a terminal: it reads key presses, advances
// the game at a fixed rate and redraws the screen.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wifihunt/internal/config"
	"github.com/tomz197/wifihunt/internal/draw"
	"github.com/tomz197/wifihunt/internal/game"
	"github.com/tomz197/wifihunt/internal/input"
)

// Options configures a terminal session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Logger       *log.Logger       // Defaults to discarding
	GameOptions  []game.Option     // Passed to game.New
}

// Run plays one game on the terminal behind r and w with the standard
// Input → Update → Draw cycle. It returns when the player quits, when r
// reaches EOF or when ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	state := NewState(opts)
	stream := input.StartStream(r)

	cw := draw.NewChunkWriter(w)
	draw.HideCursor(cw)
	draw.ClearScreen(cw)
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}
	defer func() {
		draw.ClearScreen(cw)
		draw.ShowCursor(cw)
		_ = cw.Flush()
	}()

	lastTime := time.Now()
	for state.Running {
		frameStart := time.Now()
		state.accumulate(frameStart.Sub(lastTime))
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state, stream)
		if !state.Running {
			break
		}

		// ===== UPDATE PHASE =====
		if err := updateScreen(state); err != nil {
			return err
		}
		advance(state)

		// ===== DRAW PHASE =====
		if err := drawFrame(state, cw); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		wait := config.TerminalFrameTime - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			state.Logger.Debug("session cancelled")
			return nil
		case <-time.After(wait):
		}
	}
	return nil
}

// processInput feeds every pending key press to the game.
func processInput(state *State, stream *input.Stream) {
	for _, ev := range input.ReadInput(stream) {
		state.Game.HandleEvent(ev)
	}
	if state.Game.QuitRequested() {
		state.Logger.Info("player quit")
		state.Running = false
	}
	if stream.Closed() {
		state.Logger.Info("input closed")
		state.Running = false
	}
}

// updateScreen checks for terminal resize and resizes the canvas to match.
func updateScreen(state *State) error {
	width, height, err := state.termSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if width != state.Width || height != state.Height {
		state.Logger.Debug("terminal resized", "width", width, "height", height)
	}
	state.Width, state.Height = width, height
	state.Canvas.Resize(width, height)
	return nil
}
