package clock

import (
	"testing"
	"time"
)

func TestManualSleepAdvances(t *testing.T) {
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	c := NewManual(start)

	c.Sleep(500 * time.Millisecond)

	if got := c.Now(); !got.Equal(start.Add(500 * time.Millisecond)) {
		t.Errorf("expected clock at %v, got %v", start.Add(500*time.Millisecond), got)
	}
	if c.Slept() != 500*time.Millisecond {
		t.Errorf("expected 500ms slept, got %v", c.Slept())
	}
}

func TestManualAdvance(t *testing.T) {
	start := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	c := NewManual(start)

	c.Advance(time.Hour)

	if got := c.Now(); !got.Equal(start.Add(time.Hour)) {
		t.Errorf("expected clock at %v, got %v", start.Add(time.Hour), got)
	}
	if c.Slept() != 0 {
		t.Errorf("Advance must not count as sleep, got %v", c.Slept())
	}
}

func TestSystemNow(t *testing.T) {
	before := time.Now()
	got := System().Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Errorf("system clock out of range: %v", got)
	}
}
