// Command wasm runs the game in an ebiten window. Built with GOOS=js
// GOARCH=wasm it becomes the browser build served by cmd/web.
package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/wifihunt/internal/config"
	"github.com/tomz197/wifihunt/internal/gui"
	"github.com/tomz197/wifihunt/internal/locale"
)

func main() {
	logger := config.NewLogger(os.Stderr, "wifihunt")

	ebiten.SetTPS(config.FPS)
	ebiten.SetWindowSize(960, 640)
	ebiten.SetWindowTitle(locale.Get("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gui.New(logger)); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
