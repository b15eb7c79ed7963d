package locale

import "testing"

func TestGet(t *testing.T) {
	if got := Get("GAME_PAUSED"); got != "GAME PAUSED." {
		t.Fatalf("Get(GAME_PAUSED): got=%q", got)
	}
	if got := Format("CONFIRM_PURCHASE", 50); got != "Do you wish to pay 50 to use this network?" {
		t.Fatalf("Get(CONFIRM_PURCHASE): got=%q", got)
	}
	if got := Format("ENTER_PASSWORD", "WPA2"); got != "Enter a WPA2 password:" {
		t.Fatalf("Get(ENTER_PASSWORD): got=%q", got)
	}
}

func TestGetUnknownKey(t *testing.T) {
	if got := Get("NO_SUCH_KEY"); got != "NO_SUCH_KEY" {
		t.Fatalf("unknown key: got=%q", got)
	}
}

func TestGetLeavesPlaceholders(t *testing.T) {
	key := "HEADING"
	if got := Get(key); got != "Heading: %d°" {
		t.Fatalf("Get(%s): got=%q want=%q", key, got, "Heading: %d°")
	}
	if got := Format(key, 90); got != "Heading: 90°" {
		t.Fatalf("Format(%s, 90): got=%q want=%q", key, got, "Heading: 90°")
	}
}
