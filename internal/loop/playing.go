package loop

import "github.com/tomz197/wifihunt/internal/config"

// advance runs as many fixed steps as the elapsed time covers. A slow frame
// runs at most config.MaxStepsFrame steps and the rest of the backlog is
// dropped, so the game slows down instead of spiralling.
func advance(state *State) int {
	steps := 0
	for state.pending >= config.StepTime {
		if steps == config.MaxStepsFrame {
			state.Logger.Debug("dropping backlog", "behind", state.pending)
			state.pending = 0
			break
		}
		state.Game.Step()
		state.pending -= config.StepTime
		steps++
	}
	return steps
}
