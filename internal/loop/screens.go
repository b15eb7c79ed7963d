package loop

import (
	"github.com/tomz197/wifihunt/internal/draw"
	"github.com/tomz197/wifihunt/internal/object"
)

// drawFrame redraws the whole screen: HUD text first, then the canvas with
// the player, then any panels on top.
func drawFrame(state *State, cw *draw.ChunkWriter) error {
	draw.ClearScreen(cw)
	state.Canvas.Clear()

	v := state.Game.View()
	panels := object.Panels(v)
	ctx := object.DrawContext{
		Canvas: state.Canvas,
		Writer: cw,
		View:   v,
		Width:  state.Width,
		Height: state.Height,
		Dimmed: len(panels) > 0,
	}

	for _, obj := range object.HUD() {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	var player draw.Painter = object.PlayerStyle
	if ctx.Dimmed {
		player = object.MutedStyle
	}
	if err := state.Canvas.Render(cw, player); err != nil {
		return err
	}

	for _, obj := range panels {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	return cw.Flush()
}
