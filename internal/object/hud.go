package object

import (
	"fmt"
	"math"
	"strings"

	"github.com/gookit/color"

	"github.com/tomz197/wifihunt/internal/draw"
	"github.com/tomz197/wifihunt/internal/locale"
)

// Battery is the charge bar, coloured from red to green, and its percentage.
type Battery struct {
	Col, Row int
}

// Draw renders the bar as [█████     ]▌ 50%.
func (b Battery) Draw(ctx DrawContext) error {
	v := ctx.View
	filled := int(math.Round(v.BatteryLevel / 100 * batteryCells))
	filled = max(0, min(batteryCells, filled))

	fill := ctx.paint(color.RGB(v.BatteryColor.R, v.BatteryColor.G, v.BatteryColor.B))
	frame := ctx.paint(styleFrame)

	var sb strings.Builder
	sb.WriteString(frame.Sprint("["))
	sb.WriteString(fill.Sprint(strings.Repeat(string(draw.BlockFull), filled)))
	sb.WriteString(strings.Repeat(" ", batteryCells-filled))
	sb.WriteString(frame.Sprint("]▌"))
	sb.WriteString(" ")
	sb.WriteString(ctx.paint(draw.Plain).Sprint(fmt.Sprintf("%d%%", v.BatteryPercent)))
	ctx.Writer.WriteAt(b.Col, b.Row, sb.String())
	return nil
}

// Signal shows the associated network, greyed out when there is none.
type Signal struct {
	Col, Row int
}

// Draw renders the bars and the SSID.
func (s Signal) Draw(ctx DrawContext) error {
	if !ctx.View.Connected {
		return Text{Col: s.Col, Row: s.Row, Value: "▂▄▆█ " + locale.Get("NOT_CONNECTED"), Style: styleMuted}.Draw(ctx)
	}
	return Text{Col: s.Col, Row: s.Row, Value: "▂▄▆█ " + ctx.View.SSID}.Draw(ctx)
}

// Money is the wallet balance.
type Money struct {
	Col, Row int
}

// Draw renders a gold coin sign and the balance.
func (m Money) Draw(ctx DrawContext) error {
	ctx.Writer.WriteAt(m.Col, m.Row,
		ctx.paint(styleMoney).Sprint("$")+"   "+ctx.paint(draw.Plain).Sprint(fmt.Sprint(ctx.View.Money)))
	return nil
}

// Goals is the outstanding download and upload quota.
type Goals struct {
	Col, Row int
}

// Draw renders one line per direction.
func (g Goals) Draw(ctx DrawContext) error {
	if err := (Text{Col: g.Col, Row: g.Row, Value: locale.Format("GOAL_DOWNLOAD", ctx.View.DownloadGoal)}).Draw(ctx); err != nil {
		return err
	}
	return Text{Col: g.Col, Row: g.Row + 1, Value: locale.Format("GOAL_UPLOAD", ctx.View.UploadGoal)}.Draw(ctx)
}

// Speeds is the current transfer rate. Nothing is drawn when disconnected.
type Speeds struct {
	Col, Row int
}

// Draw renders one line per direction.
func (s Speeds) Draw(ctx DrawContext) error {
	if !ctx.View.Connected {
		return nil
	}
	if err := (Text{Col: s.Col, Row: s.Row, Value: locale.Format("SPEED_DOWNLOAD", ctx.View.DownloadSpeed)}).Draw(ctx); err != nil {
		return err
	}
	return Text{Col: s.Col, Row: s.Row + 1, Value: locale.Format("SPEED_UPLOAD", ctx.View.UploadSpeed)}.Draw(ctx)
}

// Heading is the compass readout.
type Heading struct {
	Col, Row int
}

// Draw renders the facing angle in degrees.
func (h Heading) Draw(ctx DrawContext) error {
	return Text{Col: h.Col, Row: h.Row, Value: locale.Format("HEADING", ctx.View.Heading), Style: styleMuted}.Draw(ctx)
}

// Hint reminds the player how to open help, in the bottom-left corner.
type Hint struct{}

// Draw renders the hint on the last row.
func (Hint) Draw(ctx DrawContext) error {
	return Text{Col: hudCol, Row: ctx.Height, Value: locale.Get("HELP_HINT"), Style: styleMuted}.Draw(ctx)
}

// Toast is the achievement notice along the top edge.
type Toast struct{}

// Draw renders the front toast centred on the first row.
func (Toast) Draw(ctx DrawContext) error {
	return Centred(1, ctx.Width, ctx.View.Toast, styleToast).Draw(ctx)
}
