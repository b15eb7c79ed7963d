package game

import (
	"errors"

	"github.com/tomz197/wifihunt/internal/config"
	"github.com/tomz197/wifihunt/internal/input"
	"github.com/tomz197/wifihunt/internal/locale"
	"github.com/tomz197/wifihunt/internal/wifi"
)

// DialogKind selects how a modal dialog reacts to keys.
type DialogKind int

const (
	DialogConfirm DialogKind = iota // Yes/no question
	DialogPrompt                    // Free text entry
	DialogAlert                     // Message dismissed by any key
)

// Dialog is a modal box opened while joining a network. It stops the
// simulation until it is answered.
type Dialog struct {
	Kind    DialogKind
	Message string
	Hint    string

	input  []rune
	target *wifi.AccessPoint
}

// Input returns the text typed into a prompt so far.
func (d *Dialog) Input() string {
	return string(d.input)
}

// Dialog returns the open modal dialog, or nil.
func (g *Game) Dialog() *Dialog { return g.dialog }

// joinSelected starts joining the network under the cursor.
func (g *Game) joinSelected() {
	available := g.Available()
	if len(available) == 0 {
		return
	}
	if g.cursor >= len(available) {
		g.cursor = len(available) - 1
	}
	g.beginJoin(available[g.cursor])
}

// beginJoin asks for payment first, then for a password, then connects.
func (g *Game) beginJoin(ap *wifi.AccessPoint) {
	if ap.IsPaid() {
		g.dialog = &Dialog{
			Kind:    DialogConfirm,
			Message: locale.Format("CONFIRM_PURCHASE", ap.Cost),
			target:  ap,
		}
		return
	}
	g.requestPassword(ap)
}

func (g *Game) requestPassword(ap *wifi.AccessPoint) {
	if !ap.HasPassword() {
		g.connect(ap)
		return
	}
	g.dialog = &Dialog{
		Kind:    DialogPrompt,
		Message: locale.Format("ENTER_PASSWORD", ap.Encryption.String()),
		Hint:    ap.Hint,
		target:  ap,
	}
}

func (g *Game) alert(message string) {
	g.dialog = &Dialog{Kind: DialogAlert, Message: message}
}

func (g *Game) connect(ap *wifi.AccessPoint) {
	g.current = ap
	g.logger.Info("connected", "ssid", ap.SSID)
	g.unlock(AchFirstContact)
	g.hideNetworkList()
}

func (g *Game) handleDialog(ev input.Event) {
	d := g.dialog
	switch d.Kind {
	case DialogAlert:
		g.dialog = nil
	case DialogConfirm:
		switch ev.Key {
		case input.KeyY, input.KeyEnter:
			g.confirmPurchase(d.target)
		case input.KeyN, input.KeyEscape:
			g.logger.Info("purchase declined", "ssid", d.target.SSID)
			g.dialog = nil
		}
	case DialogPrompt:
		switch {
		case ev.Key == input.KeyEnter:
			g.submitPassword(d.target, d.Input())
		case ev.Key == input.KeyEscape:
			g.dialog = nil
		case ev.Key == input.KeyBackspace:
			if len(d.input) > 0 {
				d.input = d.input[:len(d.input)-1]
			}
		case ev.Rune != 0 && len(d.input) < config.MaxPasswordLength:
			d.input = append(d.input, ev.Rune)
		}
	}
}

func (g *Game) confirmPurchase(ap *wifi.AccessPoint) {
	cost := ap.Cost
	if err := ap.Purchase(&g.wallet); err != nil {
		g.logger.Info("purchase failed", "ssid", ap.SSID, "cost", cost, "balance", g.wallet.Balance())
		if errors.Is(err, wifi.ErrInsufficientFunds) {
			g.alert(locale.Get("NOT_ENOUGH_MONEY"))
		} else {
			g.alert(err.Error())
		}
		return
	}
	g.logger.Info("purchased access", "ssid", ap.SSID, "cost", cost, "balance", g.wallet.Balance())
	g.unlock(AchBigSpender)
	g.dialog = nil
	g.requestPassword(ap)
}

func (g *Game) submitPassword(ap *wifi.AccessPoint, attempt string) {
	if err := ap.Authenticate(attempt); err != nil {
		g.logger.Info("authentication failed", "ssid", ap.SSID)
		g.alert(locale.Get("WRONG_PASSWORD"))
		return
	}
	g.unlock(AchCracked)
	g.dialog = nil
	g.connect(ap)
}
