package game

import "testing"

func TestBatteryDrain(t *testing.T) {
	b := Battery{level: 1}
	if b.Drain(1) {
		t.Fatal("reaching exactly zero should not deplete")
	}
	if !b.Drain(0.5) {
		t.Fatal("going below zero should deplete")
	}
	if got := b.Level(); got != 0 {
		t.Fatalf("level: got=%f want=0", got)
	}
}

func TestWalletTracksSpending(t *testing.T) {
	w := Wallet{balance: 500}
	w.Deduct(50)
	w.Deduct(150)

	if got := w.Balance(); got != 300 {
		t.Fatalf("balance: got=%d want=300", got)
	}
	if got := w.Spent(); got != 200 {
		t.Fatalf("spent: got=%d want=200", got)
	}
}

func TestGoalClampsEachSide(t *testing.T) {
	g := Goal{download: 10, upload: 5}
	g.Transfer(4, 8)

	down, up := g.Remaining()
	if down != 6 || up != 0 {
		t.Fatalf("remaining: got=(%f, %f) want=(6, 0)", down, up)
	}
	if g.Complete() {
		t.Fatal("goal should not be complete with download left")
	}

	g.Transfer(6, 1)
	if !g.Complete() {
		t.Fatal("goal should be complete")
	}
}
