package schedule

import (
	"testing"
	"time"
)

func TestManualFiresAtDeadline(t *testing.T) {
	m := NewManual()
	fired := 0
	m.AfterFunc(300*time.Millisecond, func() { fired++ })

	m.Advance(299 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("Expected no fire before deadline, got %d", fired)
	}
	m.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("Expected 1 fire at deadline, got %d", fired)
	}
	m.Advance(time.Hour)
	if fired != 1 {
		t.Errorf("Expected timer to fire once, got %d", fired)
	}
}

func TestManualOrdering(t *testing.T) {
	m := NewManual()
	var order []string
	m.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(200*time.Millisecond, func() { order = append(order, "c") })

	m.Advance(time.Second)
	want := "abc"
	got := ""
	for _, s := range order {
		got += s
	}
	if got != want {
		t.Errorf("fire order = %q, want %q", got, want)
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	fired := false
	timer := m.AfterFunc(100*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Error("Expected first Stop to report true")
	}
	if timer.Stop() {
		t.Error("Expected second Stop to report false")
	}
	m.Advance(time.Second)
	if fired {
		t.Error("Expected stopped timer not to fire")
	}
}

func TestManualStopAfterFire(t *testing.T) {
	m := NewManual()
	timer := m.AfterFunc(10*time.Millisecond, func() {})
	m.Advance(time.Second)
	if timer.Stop() {
		t.Error("Expected Stop after firing to report false")
	}
}

func TestManualChainedTimers(t *testing.T) {
	m := NewManual()
	var order []int
	m.AfterFunc(100*time.Millisecond, func() {
		order = append(order, 1)
		m.AfterFunc(50*time.Millisecond, func() {
			order = append(order, 2)
		})
	})

	m.Advance(200 * time.Millisecond)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("chained fire order = %v, want [1 2]", order)
	}
	if got := m.Now(); got != 200*time.Millisecond {
		t.Errorf("Now = %v, want 200ms", got)
	}
}

func TestManualChainedBeyondWindow(t *testing.T) {
	m := NewManual()
	second := false
	m.AfterFunc(100*time.Millisecond, func() {
		m.AfterFunc(500*time.Millisecond, func() { second = true })
	})

	m.Advance(200 * time.Millisecond)
	if second {
		t.Error("Expected chained timer beyond window to stay pending")
	}
	if m.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", m.Pending())
	}
	m.Advance(400 * time.Millisecond)
	if !second {
		t.Error("Expected chained timer to fire once reached")
	}
}

func TestManualDebouncePattern(t *testing.T) {
	m := NewManual()
	var got string
	var timer Timer
	input := func(v string) {
		if timer != nil {
			timer.Stop()
		}
		timer = m.AfterFunc(300*time.Millisecond, func() { got = v })
	}

	input("a")
	m.Advance(100 * time.Millisecond)
	input("ab")
	m.Advance(100 * time.Millisecond)
	input("abc")

	m.Advance(299 * time.Millisecond)
	if got != "" {
		t.Fatalf("Expected no delivery before window, got %q", got)
	}
	m.Advance(1 * time.Millisecond)
	if got != "abc" {
		t.Errorf("delivered = %q, want abc", got)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", m.Pending())
	}
}

func TestClockRunsThroughExecutor(t *testing.T) {
	ran := make(chan struct{})
	var viaExec bool
	c := NewClock(func(fn func()) {
		viaExec = true
		fn()
	})
	c.AfterFunc(time.Millisecond, func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected clock timer to fire")
	}
	if !viaExec {
		t.Error("Expected callback routed through executor")
	}
}

func TestClockStop(t *testing.T) {
	c := NewClock(nil)
	fired := make(chan struct{}, 1)
	timer := c.AfterFunc(50*time.Millisecond, func() { fired <- struct{}{} })
	if !timer.Stop() {
		t.Error("Expected Stop before firing to report true")
	}
	select {
	case <-fired:
		t.Error("Expected stopped timer not to fire")
	case <-time.After(120 * time.Millisecond):
	}
}
