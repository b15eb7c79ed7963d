package gui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/wifihunt/internal/game"
	"github.com/tomz197/wifihunt/internal/locale"
	"github.com/tomz197/wifihunt/internal/object"
	"github.com/tomz197/wifihunt/internal/physics"
)

const (
	textScale  = 1.5 // 7x13 glyphs drawn at roughly 19px
	left       = 25
	lineHeight = 25
	boxWidth   = 355
	boxPadding = 25
	playerSize = 18
)

var (
	colBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colText       = color.RGBA{A: 255}
	colMuted      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colMoney      = color.RGBA{R: 194, G: 163, B: 10, A: 255}
	colBackdrop   = color.RGBA{A: 64}
	colPanel      = color.RGBA{R: 36, G: 41, B: 51, A: 255}
	colSelected   = color.RGBA{R: 62, G: 70, B: 86, A: 255}
	colPanelText  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// basicfont only carries ASCII.
var asciiFallback = strings.NewReplacer(
	"↓", "v",
	"↑", "^",
	"→", "->",
	"←", "<-",
	"°", "",
	"…", "...",
	"—", "-",
)

// Draw paints the HUD, the player and any boxes on top.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.game.View()
	screen.Fill(colBackground)

	g.drawBattery(screen, v)
	g.drawSignal(screen, v)
	g.drawMoney(screen, v)

	g.text(screen, locale.Format("GOAL_DOWNLOAD", v.DownloadGoal), left, 190, colText)
	g.text(screen, locale.Format("GOAL_UPLOAD", v.UploadGoal), left, 220, colText)
	if v.Connected {
		g.text(screen, locale.Format("SPEED_DOWNLOAD", v.DownloadSpeed), left, 270, colText)
		g.text(screen, locale.Format("SPEED_UPLOAD", v.UploadSpeed), left, 300, colText)
	}
	g.text(screen, locale.Format("HEADING", v.Heading), left, 350, colMuted)
	g.text(screen, locale.Get("HELP_HINT"), left, float64(g.height-15), colMuted)

	if v.Toast != "" {
		g.text(screen, v.Toast, (float64(g.width)-g.advance(v.Toast))/2, 25, colMoney)
	}

	g.drawPlayer(screen, v)

	for _, box := range v.Boxes() {
		g.drawBox(screen, box)
	}
}

func (g *Game) drawBattery(screen *ebiten.Image, v game.View) {
	const (
		x, y          = 25, 25
		width, height = 30, 19
		capW, capH    = 3, 8
	)
	vector.FillRect(screen, x, y, width*float32(v.BatteryLevel/100), height, v.BatteryColor, false)
	vector.StrokeRect(screen, x, y, width, height, 1, colMuted, false)
	vector.FillRect(screen, x+width, y+(height-capH)/2, capW, capH, colMuted, false)
	g.text(screen, fmt.Sprintf("%d%%", v.BatteryPercent), x+width+15, y+height, colText)
}

func (g *Game) drawSignal(screen *ebiten.Image, v game.View) {
	const cx, cy = 40, 90
	clr := colMuted
	if v.Connected {
		clr = colText
	}
	start := float32(physics.ToRadians(-50))
	end := float32(physics.ToRadians(-130))

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	for r := float32(10); r <= 20; r += 5 {
		var arc vector.Path
		arc.Arc(cx, cy, r, start, end, vector.CounterClockwise)
		vector.StrokePath(screen, &arc, &vector.StrokeOptions{Width: 2}, op)
	}

	var wedge vector.Path
	wedge.MoveTo(cx, cy)
	wedge.Arc(cx, cy, 5, start, end, vector.CounterClockwise)
	wedge.Close()
	vector.FillPath(screen, &wedge, &vector.FillOptions{}, op)

	if v.Connected {
		g.text(screen, v.SSID, left+45, cy, colText)
	} else {
		g.text(screen, locale.Get("NOT_CONNECTED"), left+45, cy, colMuted)
	}
}

func (g *Game) drawMoney(screen *ebiten.Image, v game.View) {
	const x, y = 25, 130
	vector.FillCircle(screen, x+9, y-7, 9, colMoney, true)
	g.text(screen, "$", x+5, y, colPanelText)
	g.text(screen, fmt.Sprint(v.Money), x+45, y, colText)
}

func (g *Game) drawPlayer(screen *ebiten.Image, v game.View) {
	centre := physics.Point{X: float64(g.width) / 2, Y: float64(g.height) - 40}
	points := object.Triangle(centre, float64(v.Heading), playerSize)

	var path vector.Path
	for i, p := range points {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
			continue
		}
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(colText)
	vector.FillPath(screen, &path, &vector.FillOptions{}, op)
}

// drawBox centres a panel over a dimmed screen. The title sits on the first
// baseline and each further row takes one lineHeight.
func (g *Game) drawBox(screen *ebiten.Image, box game.Box) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), colBackdrop, false)

	rows := box.Lines
	if box.Footer != "" {
		rows = append(append([]string(nil), rows...), "", box.Footer)
	}

	width := float64(boxWidth)
	for _, s := range append([]string{box.Title}, rows...) {
		width = math.Max(width, g.advance("> "+s)+2*boxPadding)
	}
	height := float64(2*boxPadding + lineHeight*len(rows))
	if box.Title != "" {
		height += 2 * lineHeight
	}

	x := (float64(g.width) - width) / 2
	y := (float64(g.height) - height) / 2
	vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), colPanel, false)

	baseline := y + boxPadding + lineHeight - 6
	if box.Title != "" {
		g.text(screen, box.Title, x+boxPadding, baseline, colPanelText)
		baseline += 2 * lineHeight
	}
	for i, line := range rows {
		if box.Selected >= 0 && i < len(box.Lines) {
			prefix := "  "
			if i == box.Selected {
				vector.FillRect(screen, float32(x+boxPadding/2), float32(baseline-lineHeight+6),
					float32(width-boxPadding), lineHeight, colSelected, false)
				prefix = "> "
			}
			line = prefix + line
		}
		clr := colPanelText
		if box.Footer != "" && i == len(rows)-1 {
			clr = colMuted
		}
		g.text(screen, line, x+boxPadding, baseline, clr)
		baseline += lineHeight
	}
}

// text draws s with its baseline at y.
func (g *Game) text(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y-g.face.Metrics().HAscent*textScale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, asciiFallback.Replace(s), g.face, op)
}

func (g *Game) advance(s string) float64 {
	return text.Advance(asciiFallback.Replace(s), g.face) * textScale
}
