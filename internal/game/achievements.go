package game

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/tomz197/wifihunt/internal/locale"
)

// AchievementID names an unlockable milestone.
type AchievementID string

const (
	AchFirstContact AchievementID = "first-contact"
	AchBigSpender   AchievementID = "big-spender"
	AchCracked      AchievementID = "cracked"
	AchGlobetrotter AchievementID = "globetrotter"
	AchPhotoFinish  AchievementID = "photo-finish"
	AchCheapskate   AchievementID = "cheapskate"
)

var achievementNames = map[AchievementID]string{
	AchFirstContact: "ACH_FIRST_CONTACT",
	AchBigSpender:   "ACH_BIG_SPENDER",
	AchCracked:      "ACH_CRACKED",
	AchGlobetrotter: "ACH_GLOBETROTTER",
	AchPhotoFinish:  "ACH_PHOTO_FINISH",
	AchCheapskate:   "ACH_CHEAPSKATE",
}

// Name returns the display name of the achievement.
func (id AchievementID) Name() string {
	key, ok := achievementNames[id]
	if !ok {
		return string(id)
	}
	return locale.Get(key)
}

// Achievements records which milestones have been reached, in unlock order.
type Achievements struct {
	unlocked mapset.Set[AchievementID]
	order    []AchievementID
}

func newAchievements() *Achievements {
	return &Achievements{unlocked: mapset.New[AchievementID]()}
}

// Unlock marks id as reached. It returns false if it already was.
func (a *Achievements) Unlock(id AchievementID) bool {
	if a.unlocked.Has(id) {
		return false
	}
	a.unlocked.Put(id)
	a.order = append(a.order, id)
	return true
}

// Has reports whether id has been unlocked.
func (a *Achievements) Has(id AchievementID) bool {
	return a.unlocked.Has(id)
}

// Unlocked returns the reached milestones in the order they were reached.
func (a *Achievements) Unlocked() []AchievementID {
	return append([]AchievementID(nil), a.order...)
}

// toast is a short-lived HUD notice.
type toast struct {
	text      string
	remaining int // Steps left on screen
}

// unlock records an achievement and queues its toast.
func (g *Game) unlock(id AchievementID) {
	if !g.achievements.Unlock(id) {
		return
	}
	g.logger.Info("achievement unlocked", "id", string(id))
	g.toasts = append(g.toasts, toast{
		text:      locale.Format("ACHIEVEMENT_UNLOCKED", id.Name()),
		remaining: g.settings.ToastSteps,
	})
}

// tickToasts ages the front toast and drops it once expired.
func (g *Game) tickToasts() {
	if len(g.toasts) == 0 {
		return
	}
	g.toasts[0].remaining--
	if g.toasts[0].remaining <= 0 {
		g.toasts = g.toasts[1:]
	}
}
