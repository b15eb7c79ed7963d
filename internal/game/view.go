package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tomz197/wifihunt/internal/locale"
	"github.com/tomz197/wifihunt/internal/physics"
	"github.com/tomz197/wifihunt/internal/wifi"
)

var (
	batteryEmpty = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	batteryFull  = color.RGBA{R: 34, G: 228, B: 71, A: 255}
)

// NetworkRow is one entry of the network list.
type NetworkRow struct {
	SSID       string
	Encryption wifi.Encryption
	Locked     bool // Password still required
	Cost       int
}

// Label formats the row for display.
func (r NetworkRow) Label() string {
	label := r.SSID
	if r.Locked {
		label += " [" + r.Encryption.String() + "]"
	}
	if r.Cost > 0 {
		label += fmt.Sprintf(" $%d", r.Cost)
	}
	return label
}

// View is a read-only snapshot of everything a renderer draws.
type View struct {
	BatteryLevel   float64 // Exact charge
	BatteryPercent int     // Charge rounded up for display
	BatteryColor   color.RGBA

	Money     int
	Connected bool
	SSID      string

	DownloadGoal  int // MiB, rounded up
	UploadGoal    int
	DownloadSpeed int // KiB/s, rounded up, zero when disconnected
	UploadSpeed   int

	Heading  int
	Position physics.Point

	Overlay  Overlay
	Networks []NetworkRow
	Cursor   int
	Dialog   *Dialog

	Outcome Outcome
	Toast   string
}

// View captures the current state for drawing.
func (g *Game) View() View {
	download, upload := g.goal.Remaining()
	v := View{
		BatteryLevel:   g.battery.Level(),
		BatteryPercent: int(math.Ceil(g.battery.Level())),
		BatteryColor:   BatteryColor(g.battery.Level()),
		Money:          g.wallet.Balance(),
		DownloadGoal:   int(math.Ceil(download)),
		UploadGoal:     int(math.Ceil(upload)),
		Heading:        g.player.Heading,
		Position:       g.player.Position,
		Overlay:        g.overlay,
		Cursor:         g.cursor,
		Outcome:        g.outcome,
	}
	if g.current != nil {
		v.Connected = true
		v.SSID = g.current.SSID
		v.DownloadSpeed = kibPerSecond(g.current.SpeedAt(g.player.Position, wifi.Download))
		v.UploadSpeed = kibPerSecond(g.current.SpeedAt(g.player.Position, wifi.Upload))
	}
	if g.overlay == OverlayNetworkList {
		for _, ap := range g.Available() {
			v.Networks = append(v.Networks, NetworkRow{
				SSID:       ap.SSID,
				Encryption: ap.Encryption,
				Locked:     ap.HasPassword(),
				Cost:       ap.Cost,
			})
		}
	}
	if g.dialog != nil {
		d := *g.dialog
		d.input = append([]rune(nil), g.dialog.input...)
		v.Dialog = &d
	}
	if len(g.toasts) > 0 {
		v.Toast = g.toasts[0].text
	}
	return v
}

func kibPerSecond(mibps float64) int {
	return int(math.Ceil(mibps * 1024))
}

// BatteryColor interpolates the battery bar colour from dark red at 0% to
// green at 100%.
func BatteryColor(level float64) color.RGBA {
	t := math.Max(0, math.Min(1, level/100))
	mix := func(from, to uint8) uint8 {
		return uint8(math.Round(float64(from) + (float64(to)-float64(from))*t))
	}
	return color.RGBA{
		R: mix(batteryEmpty.R, batteryFull.R),
		G: mix(batteryEmpty.G, batteryFull.G),
		B: mix(batteryEmpty.B, batteryFull.B),
		A: 255,
	}
}

// Box is a centred panel drawn over a dimmed play field.
type Box struct {
	Title    string
	Lines    []string
	Selected int // Highlighted line, -1 for none
	Footer   string
}

// Boxes returns the panels to draw, bottom first.
func (v View) Boxes() []Box {
	var boxes []Box
	switch v.Overlay {
	case OverlayPaused:
		boxes = append(boxes, Box{
			Lines:    []string{locale.Get("GAME_PAUSED"), "", locale.Get("PRESS_P_TO_UNPAUSE")},
			Selected: -1,
		})
	case OverlayNetworkList:
		boxes = append(boxes, v.networkBox())
	case OverlayHelp:
		lines := []string{locale.Get("HELP_HEADING")}
		for _, key := range helpKeys {
			lines = append(lines, locale.Get(key))
		}
		boxes = append(boxes, Box{Title: locale.Get("TITLE"), Lines: lines, Selected: -1})
	}
	if v.Dialog != nil {
		boxes = append(boxes, dialogBox(v.Dialog))
	}
	if v.Outcome != OutcomeNone {
		msg := locale.Get("GAME_LOST")
		if v.Outcome == OutcomeWon {
			msg = locale.Get("GAME_WON")
		}
		boxes = append(boxes, Box{Lines: []string{msg}, Selected: -1})
	}
	return boxes
}

func (v View) networkBox() Box {
	box := Box{
		Title:    locale.Get("AVAILABLE_NETWORKS"),
		Selected: v.Cursor,
		Footer:   locale.Get("NETWORK_LIST_FOOTER"),
	}
	for _, row := range v.Networks {
		box.Lines = append(box.Lines, row.Label())
	}
	if len(box.Lines) == 0 {
		box.Lines = []string{locale.Get("NO_NETWORKS")}
		box.Selected = -1
	}
	return box
}

func dialogBox(d *Dialog) Box {
	box := Box{Lines: []string{d.Message}, Selected: -1}
	switch d.Kind {
	case DialogConfirm:
		box.Footer = locale.Get("CONFIRM_CHOICES")
	case DialogPrompt:
		if d.Hint != "" {
			box.Lines = append(box.Lines, d.Hint)
		}
		box.Lines = append(box.Lines, "> "+d.Input()+"_")
		box.Footer = locale.Get("PROMPT_CHOICES")
	case DialogAlert:
		box.Footer = locale.Get("DISMISS")
	}
	return box
}
