package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseArrowsAndLetters(t *testing.T) {
	events := Parse([]byte("\x1b[Aw\x1bOD d"))
	want := []Event{
		{Key: KeyUp},
		{Key: KeyW, Rune: 'w'},
		{Key: KeyLeft},
		{Key: KeyNone, Rune: ' '},
		{Key: KeyD, Rune: 'd'},
	}
	if len(events) != len(want) {
		t.Fatalf("Parse: got=%v want=%v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: got=%v want=%v", i, events[i], want[i])
		}
	}
}

func TestParseControlKeys(t *testing.T) {
	events := Parse([]byte{'\r', '\x7f', '\b', '\x1b', '\x03', '\x01'})
	want := []Key{KeyEnter, KeyBackspace, KeyBackspace, KeyEscape, KeyInterrupt}
	if len(events) != len(want) {
		t.Fatalf("Parse: got=%v want keys %v", events, want)
	}
	for i, k := range want {
		if events[i].Key != k {
			t.Errorf("event %d: got=%v want=%v", i, events[i].Key, k)
		}
	}
}

func TestParseUnknownSequenceAndUTF8(t *testing.T) {
	events := Parse([]byte("\x1b[Zé"))
	if len(events) != 1 || events[0].Rune != 'é' || events[0].Key != KeyNone {
		t.Fatalf("Parse: got=%v", events)
	}
}

func TestKeyForRuneIsCaseInsensitive(t *testing.T) {
	if KeyForRune('P') != KeyP || KeyForRune('p') != KeyP {
		t.Fatal("P should map to KeyP in both cases")
	}
	if KeyForRune('z') != KeyNone {
		t.Fatal("z is not a game key")
	}
}

func TestStreamReportsClose(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("q")))

	var events []Event
	deadline := time.Now().Add(time.Second)
	for !s.Closed() && time.Now().Before(deadline) {
		events = append(events, ReadInput(s)...)
		time.Sleep(time.Millisecond)
	}
	if !s.Closed() {
		t.Fatal("stream should close after EOF")
	}
	if len(events) != 1 || events[0].Key != KeyQ {
		t.Fatalf("events: got=%v", events)
	}
}

func TestKeyString(t *testing.T) {
	if KeyEnter.String() != "enter" || Key(999).String() != "unknown" {
		t.Fatalf("unexpected names: %q %q", KeyEnter.String(), Key(999).String())
	}
}

func TestRepeats(t *testing.T) {
	var fired []int
	for tick := 1; tick <= 21; tick++ {
		if Repeats(tick, 15, 2) {
			fired = append(fired, tick)
		}
	}
	want := []int{1, 17, 19, 21}
	if len(fired) != len(want) {
		t.Fatalf("fired: got=%v want=%v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired: got=%v want=%v", fired, want)
		}
	}
	if Repeats(0, 15, 2) {
		t.Fatal("a key that is not held should not fire")
	}
}

func TestParseSkipsSequenceParameters(t *testing.T) {
	events := Parse([]byte("\x1b[3~x\x1b[1;5A"))
	want := []Event{
		{Key: KeyNone, Rune: 'x'},
		{Key: KeyUp},
	}
	if len(events) != len(want) {
		t.Fatalf("Parse: got=%v want=%v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: got=%v want=%v", i, events[i], want[i])
		}
	}
}

func newManualStream() *Stream {
	return &Stream{ch: make(chan byte, 16)}
}

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputJoinsSplitArrow(t *testing.T) {
	s := newManualStream()

	feed(s, "\x1b")
	if events := ReadInput(s); len(events) != 0 {
		t.Fatalf("first half: got=%v want none", events)
	}
	feed(s, "[A")
	events := ReadInput(s)
	if len(events) != 1 || events[0].Key != KeyUp {
		t.Fatalf("second half: got=%v want=[up]", events)
	}
}

func TestReadInputReleasesLoneEscape(t *testing.T) {
	s := newManualStream()

	feed(s, "\x1b")
	if events := ReadInput(s); len(events) != 0 {
		t.Fatalf("escape held back: got=%v want none", events)
	}
	events := ReadInput(s)
	if len(events) != 1 || events[0].Key != KeyEscape {
		t.Fatalf("escape after a quiet read: got=%v want=[escape]", events)
	}
}

func TestReadInputJoinsSplitRune(t *testing.T) {
	s := newManualStream()
	e := "é"

	feed(s, e[:1])
	if events := ReadInput(s); len(events) != 0 {
		t.Fatalf("first byte: got=%v want none", events)
	}
	feed(s, e[1:])
	events := ReadInput(s)
	if len(events) != 1 || events[0].Rune != 'é' {
		t.Fatalf("second byte: got=%v want=[é]", events)
	}
}

func TestReadInputFlushesOnClose(t *testing.T) {
	s := newManualStream()
	feed(s, "\x1b")
	close(s.ch)

	events := ReadInput(s)
	if len(events) != 1 || events[0].Key != KeyEscape {
		t.Fatalf("escape at EOF: got=%v want=[escape]", events)
	}
	if !s.Closed() {
		t.Fatal("stream should report closed")
	}
}
