package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/wifihunt/internal/config"
	"github.com/tomz197/wifihunt/internal/locale"
)

func fixedSize() (int, int, error) { return 80, 24, nil }

func runAsync(ctx context.Context, r io.Reader, w io.Writer) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(r), w, Options{TermSizeFunc: fixedSize})
	}()
	return done
}

func waitRun(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	pr, pw := io.Pipe()
	var out bytes.Buffer
	done := runAsync(context.Background(), pr, &out)

	time.Sleep(100 * time.Millisecond)
	if _, err := pw.Write([]byte("q")); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitRun(t, done)

	got := out.String()
	for _, want := range []string{locale.Format("GOAL_DOWNLOAD", 2048), locale.Get("NOT_CONNECTED"), "\033[?25h"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestRunStopsOnEOF(t *testing.T) {
	var out bytes.Buffer
	waitRun(t, runAsync(context.Background(), strings.NewReader(""), &out))
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, _ := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	done := runAsync(ctx, pr, &out)

	time.Sleep(50 * time.Millisecond)
	cancel()
	waitRun(t, done)
}

func TestRunDrawsOverlays(t *testing.T) {
	pr, pw := io.Pipe()
	var out bytes.Buffer
	done := runAsync(context.Background(), pr, &out)

	if _, err := pw.Write([]byte("p")); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	if _, err := pw.Write([]byte("\x03")); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitRun(t, done)

	if !strings.Contains(out.String(), locale.Get("GAME_PAUSED")) {
		t.Fatal("pause panel should be drawn")
	}
}

func TestAdvanceRunsFixedSteps(t *testing.T) {
	state := NewState(Options{Logger: log.New(io.Discard)})

	state.accumulate(3*config.StepTime + config.StepTime/2)
	if got := advance(state); got != 3 {
		t.Fatalf("steps: got=%d want=3", got)
	}
	if state.pending != config.StepTime/2 {
		t.Fatalf("leftover: got=%v want=%v", state.pending, config.StepTime/2)
	}
}

func TestAdvanceDropsBacklog(t *testing.T) {
	state := NewState(Options{Logger: log.New(io.Discard)})

	state.accumulate(100 * config.StepTime)
	if got := advance(state); got != config.MaxStepsFrame {
		t.Fatalf("steps: got=%d want=%d", got, config.MaxStepsFrame)
	}
	if state.pending != 0 {
		t.Fatalf("backlog should be dropped: got=%v", state.pending)
	}
}
