package search

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var fired int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt32(&fired, 1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("fired %d times, want 1", got)
	}
}

func TestDebouncerLastTriggerWins(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var got atomic.Value
	d.Trigger(func() { got.Store("first") })
	d.Trigger(func() { got.Store("second") })

	time.Sleep(80 * time.Millisecond)
	if v := got.Load(); v != "second" {
		t.Fatalf("got %v, want second", v)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired int32
	d.Trigger(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Fatal("stopped debouncer still fired")
	}
}

func TestDebouncerDefaultDelay(t *testing.T) {
	d := NewDebouncer(0)
	defer d.Stop()
	if d.delay != 200*time.Millisecond {
		t.Fatalf("delay = %v, want 200ms", d.delay)
	}
}
