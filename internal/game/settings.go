package game

import "github.com/tomz197/wifihunt/internal/config"

// Settings holds the tunables a game is created with.
type Settings struct {
	FPS              int     // Fixed steps per simulated second
	InitialBattery   float64 // Percent
	BatteryDrainIdle float64 // Percent per second
	BatteryDrainList float64 // Percent per second while the network list is open
	InitialMoney     int
	DownloadGoal     float64 // MiB
	UploadGoal       float64 // MiB
	StepDistance     float64 // Plane units per move
	InitialHeading   int     // Degrees
	ToastSteps       int     // How long an achievement toast stays up
}

// DefaultSettings returns the standard game tuning.
func DefaultSettings() Settings {
	return Settings{
		FPS:              config.FPS,
		InitialBattery:   config.BatteryFull,
		BatteryDrainIdle: config.BatteryDrainIdle,
		BatteryDrainList: config.BatteryDrainList,
		InitialMoney:     config.InitialMoney,
		DownloadGoal:     config.DownloadGoalMiB,
		UploadGoal:       config.UploadGoalMiB,
		StepDistance:     config.StepDistance,
		InitialHeading:   config.InitialHeading,
		ToastSteps:       int(config.ToastSeconds * config.FPS),
	}
}
