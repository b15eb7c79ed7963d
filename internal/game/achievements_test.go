package game

import (
	"testing"

	"github.com/tomz197/wifihunt/internal/input"
	"github.com/tomz197/wifihunt/internal/locale"
	"github.com/tomz197/wifihunt/internal/physics"
)

func TestAchievementsUnlockOnce(t *testing.T) {
	a := newAchievements()
	if !a.Unlock(AchCracked) {
		t.Fatal("first unlock should report true")
	}
	if a.Unlock(AchCracked) {
		t.Fatal("second unlock should report false")
	}
	a.Unlock(AchFirstContact)

	got := a.Unlocked()
	if len(got) != 2 || got[0] != AchCracked || got[1] != AchFirstContact {
		t.Fatalf("unlock order: got=%v", got)
	}
}

func TestAchievementNames(t *testing.T) {
	if got := AchGlobetrotter.Name(); got != "Globetrotter" {
		t.Fatalf("name: got=%q want=%q", got, "Globetrotter")
	}
	if got := AchievementID("mystery").Name(); got != "mystery" {
		t.Fatalf("unknown id name: got=%q want=%q", got, "mystery")
	}
}

func TestFirstContactAndToast(t *testing.T) {
	s := DefaultSettings()
	s.ToastSteps = 2
	g := newTestGameWith(t, s, openAP("home", physics.Point{}, 10, 1))
	press(g, input.KeyN, input.KeyEnter)

	if !g.Achievements().Has(AchFirstContact) {
		t.Fatal("connecting should unlock first-contact")
	}
	want := locale.Format("ACHIEVEMENT_UNLOCKED", AchFirstContact.Name())
	if got := g.View().Toast; got != want {
		t.Fatalf("toast: got=%q want=%q", got, want)
	}

	step(g, 2)
	if got := g.View().Toast; got != "" {
		t.Fatalf("toast should expire: got=%q", got)
	}
}

func TestToastsQueue(t *testing.T) {
	s := DefaultSettings()
	s.ToastSteps = 1
	g := newTestGameWith(t, s)
	g.unlock(AchBigSpender)
	g.unlock(AchCracked)

	if got := g.View().Toast; got != locale.Format("ACHIEVEMENT_UNLOCKED", AchBigSpender.Name()) {
		t.Fatalf("first toast: got=%q", got)
	}
	step(g, 1)
	if got := g.View().Toast; got != locale.Format("ACHIEVEMENT_UNLOCKED", AchCracked.Name()) {
		t.Fatalf("second toast: got=%q", got)
	}
}

func TestGlobetrotter(t *testing.T) {
	s := DefaultSettings()
	s.StepDistance = 100
	g := newTestGameWith(t, s)

	press(g, input.KeyW, input.KeyW, input.KeyW, input.KeyW)
	if g.Achievements().Has(AchGlobetrotter) {
		t.Fatal("globetrotter unlocked too early")
	}
	press(g, input.KeyW)
	if !g.Achievements().Has(AchGlobetrotter) {
		t.Fatal("travelling 500 units should unlock globetrotter")
	}
}

func TestWinAchievements(t *testing.T) {
	s := DefaultSettings()
	s.DownloadGoal = 1
	s.UploadGoal = 1
	g := newTestGameWith(t, s, openAP("fast", physics.Point{}, 10, 100))
	press(g, input.KeyN, input.KeyEnter)
	g.battery.level = 5
	step(g, 1)

	if g.Outcome() != OutcomeWon {
		t.Fatalf("outcome: got=%v want=%v", g.Outcome(), OutcomeWon)
	}
	if !g.Achievements().Has(AchPhotoFinish) {
		t.Fatal("winning on low battery should unlock photo-finish")
	}
	if !g.Achievements().Has(AchCheapskate) {
		t.Fatal("winning without paying should unlock cheapskate")
	}
}

func TestNoWinAchievementsOnLoss(t *testing.T) {
	s := DefaultSettings()
	s.BatteryDrainIdle = 6000
	g := newTestGameWith(t, s)
	step(g, 1)

	if g.Achievements().Has(AchPhotoFinish) || g.Achievements().Has(AchCheapskate) {
		t.Fatalf("loss unlocked win achievements: %v", g.Achievements().Unlocked())
	}
}
