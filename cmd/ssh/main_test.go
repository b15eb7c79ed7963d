package main

import (
	"sync"
	"testing"
)

func TestWindowTracksResizes(t *testing.T) {
	w := newWindow(80, 24)
	if width, height, err := w.size(); err != nil || width != 80 || height != 24 {
		t.Fatalf("initial size: got=(%d, %d, %v) want=(80, 24, nil)", width, height, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			w.resize(100+n, 40)
			_, _, _ = w.size()
		}(i)
	}
	wg.Wait()

	w.resize(120, 50)
	if width, height, _ := w.size(); width != 120 || height != 50 {
		t.Fatalf("resized: got=(%d, %d) want=(120, 50)", width, height)
	}
}
