// Copyright 2026 The Slackwire Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("frozen clock moved: Now() = %v", got)
	}
	clock.Advance(5 * time.Second)
	want := epoch.Add(5 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockSet(t *testing.T) {
	clock := Fake(epoch)
	earlier := epoch.Add(-time.Hour)
	clock.Set(earlier)
	if got := clock.Now(); !got.Equal(earlier) {
		t.Fatalf("Now() after Set = %v, want %v", got, earlier)
	}
}

func TestFakeClockStep(t *testing.T) {
	clock := Fake(epoch)
	clock.SetStep(10 * time.Millisecond)

	first := clock.Now()
	second := clock.Now()
	if !first.Equal(epoch) {
		t.Errorf("first read = %v, want %v", first, epoch)
	}
	if got := second.Sub(first); got != 10*time.Millisecond {
		t.Errorf("step = %v, want 10ms", got)
	}
	if got := Since(clock, first); got != 20*time.Millisecond {
		t.Errorf("Since = %v, want 20ms", got)
	}
	if got := clock.Reads(); got != 3 {
		t.Errorf("Reads() = %d, want 3", got)
	}

	clock.SetStep(0)
	frozen := clock.Now()
	if again := clock.Now(); !again.Equal(frozen) {
		t.Errorf("clock moved after SetStep(0): %v then %v", frozen, again)
	}
}

func TestFakeClockNegativeAdvancePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Advance(-1s) did not panic")
		}
	}()
	Fake(epoch).Advance(-time.Second)
}

func TestFakeClockConcurrentReads(t *testing.T) {
	clock := Fake(epoch)
	clock.SetStep(time.Microsecond)

	const readers = 8
	const readsEach = 100
	var wg sync.WaitGroup
	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range readsEach {
				clock.Now()
			}
		}()
	}
	wg.Wait()

	want := epoch.Add(readers * readsEach * time.Microsecond)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}

func TestRealClockMoves(t *testing.T) {
	clock := Real()
	start := clock.Now()
	if Since(clock, start) < 0 {
		t.Error("real clock went backwards")
	}
}
