package config

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Loop timing
const (
	FPS           = 50 // Fixed simulation steps per second
	StepTime      = time.Second / FPS
	MaxStepsFrame = 5 // Cap on catch-up steps after a slow frame
)

// Battery (percent per second)
const (
	BatteryFull       = 100.0
	BatteryDrainIdle  = 0.1
	BatteryDrainList  = 0.3 // While scanning with the network list open
	PhotoFinishMargin = 10.0
)

// Wallet and goals
const (
	InitialMoney    = 500
	DownloadGoalMiB = 2048.0
	UploadGoalMiB   = 1024.0
)

// Player
const (
	InitialHeading   = 90  // Degrees
	StepDistance     = 1.0 // Plane units per move
	GlobetrotterTrip = 500.0
)

// Dialogs and input
const (
	MaxPasswordLength = 64
	ToastSeconds      = 3.0
)

// Browser key repeat, in ticks
const (
	KeyRepeatDelay    = 15
	KeyRepeatInterval = 2
)

// Terminal frontend
const (
	TerminalTargetFPS = 50
	TerminalFrameTime = time.Second / TerminalTargetFPS
)
