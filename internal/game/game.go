// Package game holds the WiFi Hunt rules: movement, the access points the
// player can join, the battery, wallet and transfer goals, and the overlay
// state machine that decides which keys do what.
//
// A Game is driven from outside: frontends feed it key events through
// HandleEvent, advance it with Step at a fixed rate, and draw whatever View
// returns. It does no I/O of its own besides logging.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wifihunt/internal/config"
	"github.com/tomz197/wifihunt/internal/input"
	"github.com/tomz197/wifihunt/internal/wifi"
)

// Outcome is how a game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // Still playing
	OutcomeWon                 // Both quotas done
	OutcomeLost                // Battery ran out
)

// String returns "playing", "won" or "lost".
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "playing"
	}
}

// Game is the complete state of one play session.
type Game struct {
	settings Settings
	logger   *log.Logger
	bindings *input.Bindings

	networks []*wifi.AccessPoint
	current  *wifi.AccessPoint // Associated network, nil when disconnected

	player  Player
	battery Battery
	wallet  Wallet
	goal    Goal

	overlay Overlay
	cursor  int     // Selected row in the network list
	dialog  *Dialog // Modal dialog on top of the network list

	achievements *Achievements
	toasts       []toast

	outcome Outcome
	quit    bool
	steps   int
}

// Option configures a Game.
type Option func(*Game)

// WithSettings replaces the default tuning.
func WithSettings(s Settings) Option {
	return func(g *Game) {
		g.settings = s
	}
}

// WithAccessPoints replaces the default catalog.
func WithAccessPoints(aps []*wifi.AccessPoint) Option {
	return func(g *Game) {
		g.networks = aps
	}
}

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game ready to play.
func New(opts ...Option) *Game {
	g := &Game{
		settings:     DefaultSettings(),
		bindings:     input.NewBindings(),
		achievements: newAchievements(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.networks == nil {
		g.networks = wifi.DefaultCatalog()
	}
	if g.settings.FPS <= 0 {
		g.settings.FPS = config.FPS
	}

	g.player = Player{Heading: g.settings.InitialHeading}
	g.battery = Battery{level: g.settings.InitialBattery}
	g.wallet = Wallet{balance: g.settings.InitialMoney}
	g.goal = Goal{download: g.settings.DownloadGoal, upload: g.settings.UploadGoal}

	g.bindMovementKeys()
	g.bindings.Bind(g.togglePause, input.KeyP)
	g.bindings.Bind(g.toggleNetworkList, input.KeyN)
	g.bindings.Bind(g.toggleHelp, input.KeyH)

	g.logger.Info("game started", "networks", len(g.networks))
	return g
}

// HandleEvent applies one key press. Quit keys are checked first, then an
// open dialog takes the event, then the current bindings.
func (g *Game) HandleEvent(ev input.Event) {
	if ev.Key == input.KeyInterrupt {
		g.quit = true
		return
	}
	if ev.Key == input.KeyQ && (g.dialog == nil || g.dialog.Kind != DialogPrompt) {
		g.quit = true
		return
	}
	if g.dialog != nil {
		g.handleDialog(ev)
		return
	}
	if g.outcome != OutcomeNone {
		return
	}
	g.bindings.Dispatch(ev)
}

// Step advances the simulation by one fixed tick. The battery drains first,
// then the goals take the current transfer, then the association is dropped
// if the player has walked out of range. Pausing holds the battery only;
// transfers keep running.
func (g *Game) Step() {
	g.tickToasts()
	if g.outcome != OutcomeNone || g.dialog != nil {
		return
	}
	g.steps++
	fps := float64(g.settings.FPS)

	if g.overlay != OverlayPaused {
		rate := g.settings.BatteryDrainIdle
		if g.overlay == OverlayNetworkList {
			rate = g.settings.BatteryDrainList
		}
		if g.battery.Drain(rate / fps) {
			g.finish(OutcomeLost)
		}
	}

	if g.current != nil {
		down := g.current.SpeedAt(g.player.Position, wifi.Download)
		up := g.current.SpeedAt(g.player.Position, wifi.Upload)
		g.goal.Transfer(down/fps, up/fps)
	}
	if g.goal.Complete() {
		g.finish(OutcomeWon)
	}

	if g.current != nil && !g.current.InRange(g.player.Position) {
		g.logger.Info("lost connection", "ssid", g.current.SSID)
		g.current = nil
	}
}

// finish ends the game. The first outcome sticks.
func (g *Game) finish(o Outcome) {
	if g.outcome != OutcomeNone {
		return
	}
	g.outcome = o
	download, upload := g.goal.Remaining()
	g.logger.Info("game over",
		"outcome", o.String(),
		"battery", g.battery.Level(),
		"download", download,
		"upload", upload,
		"steps", g.steps,
	)
	if o != OutcomeWon {
		return
	}
	if g.battery.Level() < config.PhotoFinishMargin {
		g.unlock(AchPhotoFinish)
	}
	if g.wallet.Spent() == 0 {
		g.unlock(AchCheapskate)
	}
}

// Outcome reports whether the game is still running, won or lost.
func (g *Game) Outcome() Outcome { return g.outcome }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.outcome != OutcomeNone }

// QuitRequested reports whether the player asked to leave.
func (g *Game) QuitRequested() bool { return g.quit }

// Player returns a copy of the player state.
func (g *Game) Player() Player { return g.player }

// BatteryLevel returns the charge in percent.
func (g *Game) BatteryLevel() float64 { return g.battery.Level() }

// Money returns the wallet balance.
func (g *Game) Money() int { return g.wallet.Balance() }

// Remaining returns the outstanding download and upload quota in MiB.
func (g *Game) Remaining() (download, upload float64) { return g.goal.Remaining() }

// Current returns the associated access point, or nil.
func (g *Game) Current() *wifi.AccessPoint { return g.current }

// Available returns the access points in range of the player.
func (g *Game) Available() []*wifi.AccessPoint {
	return wifi.Available(g.networks, g.player.Position)
}

// Achievements returns the milestone tracker.
func (g *Game) Achievements() *Achievements { return g.achievements }

// Bindings exposes the live binding table.
func (g *Game) Bindings() *input.Bindings { return g.bindings }
