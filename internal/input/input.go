// Package input turns raw key presses into key events and routes them to
// handlers through a rebindable table.
package input

import (
	"bufio"
	"unicode/utf8"
)

// Key identifies a key the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyD
	KeyP
	KeyN
	KeyH
	KeyQ
	KeyY
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyInterrupt // Ctrl-C
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyW:         "w",
	KeyA:         "a",
	KeyD:         "d",
	KeyP:         "p",
	KeyN:         "n",
	KeyH:         "h",
	KeyQ:         "q",
	KeyY:         "y",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyInterrupt: "ctrl+c",
}

// String returns the key's short name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single key press. Rune carries the printable character typed,
// if any, so that text prompts can consume the same events as bindings.
type Event struct {
	Key  Key
	Rune rune
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	closed  bool
	pending []byte // Escape sequence or UTF-8 character cut off by the last read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended and every byte
// has been consumed.
func (s *Stream) Closed() bool {
	return s.closed && len(s.pending) == 0
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// parses them into key events. A sequence cut off at the end of the drain
// is held back until the next call. If that call brings no new bytes, the
// sequence is taken as complete, which is how a lone Esc gets through.
func ReadInput(s *Stream) []Event {
	buf := s.pending
	s.pending = nil
	fresh := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			fresh = true
		default:
			break drain
		}
	}

	events, rest := parse(buf, !fresh || s.closed)
	if len(rest) > 0 {
		s.pending = append([]byte(nil), rest...)
	}
	return events
}

// Parse converts raw terminal bytes into key events, treating buf as
// complete input. Arrow keys arrive as CSI (ESC [) or SS3 (ESC O)
// sequences; other sequences are dropped whole, parameters included.
func Parse(buf []byte) []Event {
	events, _ := parse(buf, true)
	return events
}

// parse is Parse for input that may continue. Unless final is set, a
// sequence cut off at the end of buf is returned as rest instead of being
// parsed.
func parse(buf []byte, final bool) (events []Event, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			n, ev, ok := escapeSequence(buf[i:])
			if n == 0 {
				if !final {
					return events, buf[i:]
				}
				// Unfinished CSI/SS3 sequences are dropped.
				if len(buf[i:]) == 1 {
					events = append(events, Event{Key: KeyEscape})
				}
				return events, nil
			}
			if ok {
				events = append(events, ev)
			}
			i += n - 1
			continue
		}

		if b >= utf8.RuneSelf {
			if !final && !utf8.FullRune(buf[i:]) {
				return events, buf[i:]
			}
			r, size := utf8.DecodeRune(buf[i:])
			if r != utf8.RuneError {
				events = append(events, Event{Rune: r})
			}
			i += size - 1
			continue
		}

		if ev, ok := byteEvent(b); ok {
			events = append(events, ev)
		}
	}
	return events, nil
}

// escapeSequence reads the sequence starting with the ESC at seq[0]. It
// returns how many bytes the sequence spans, or 0 when seq ends before the
// sequence does, and the event it stands for, if any. An ESC that starts
// no sequence is the Escape key.
func escapeSequence(seq []byte) (n int, ev Event, ok bool) {
	if len(seq) < 2 {
		return 0, Event{}, false
	}

	var final byte
	switch seq[1] {
	case 'O':
		if len(seq) < 3 {
			return 0, Event{}, false
		}
		n, final = 3, seq[2]
	case '[':
		// Parameter and intermediate bytes, then one final byte.
		j := 2
		for j < len(seq) && seq[j] >= 0x20 && seq[j] <= 0x3f {
			j++
		}
		if j == len(seq) {
			return 0, Event{}, false
		}
		if seq[j] < 0x40 || seq[j] > 0x7e {
			return j, Event{}, false
		}
		n, final = j+1, seq[j]
	default:
		return 1, Event{Key: KeyEscape}, true
	}

	switch final {
	case 'A':
		return n, Event{Key: KeyUp}, true
	case 'B':
		return n, Event{Key: KeyDown}, true
	case 'C':
		return n, Event{Key: KeyRight}, true
	case 'D':
		return n, Event{Key: KeyLeft}, true
	}
	return n, Event{}, false
}

// byteEvent maps a single ASCII byte to an event.
func byteEvent(b byte) (Event, bool) {
	switch b {
	case '\x03':
		return Event{Key: KeyInterrupt}, true
	case '\r', '\n':
		return Event{Key: KeyEnter}, true
	case '\b', '\x7f':
		return Event{Key: KeyBackspace}, true
	}
	if b < ' ' || b > '~' {
		return Event{}, false
	}
	return Event{Key: KeyForRune(rune(b)), Rune: rune(b)}, true
}

// KeyForRune returns the key a printable character stands for, or KeyNone
// when the character is only meaningful as text.
func KeyForRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyW
	case 'a', 'A':
		return KeyA
	case 'd', 'D':
		return KeyD
	case 'p', 'P':
		return KeyP
	case 'n', 'N':
		return KeyN
	case 'h', 'H':
		return KeyH
	case 'q', 'Q':
		return KeyQ
	case 'y', 'Y':
		return KeyY
	}
	return KeyNone
}

// Repeats reports whether a key held for the given number of ticks should
// fire on this tick: once on press, then every interval ticks after delay.
func Repeats(ticks, delay, interval int) bool {
	if ticks == 1 {
		return true
	}
	if interval <= 0 || ticks <= delay {
		return false
	}
	return (ticks-delay)%interval == 0
}
