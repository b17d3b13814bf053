package logo

import (
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	c := &FrameClock{}
	assertNear(t, "start", c.Now(), 0)
	for i := 0; i < 50; i++ {
		c.Advance()
	}
	assertNear(t, "after 50 frames", c.Now(), 1)
	if c.Frames() != 50 {
		t.Errorf("Frames = %d, want 50", c.Frames())
	}
}

func TestWallClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	c := NewWallClock(func() time.Time { return now })
	assertNear(t, "start", c.Now(), 0)

	now = base.Add(2500 * time.Millisecond)
	c.Advance()
	assertNear(t, "elapsed", c.Now(), 2.5)
	// Reading twice without time passing gives the same value.
	assertNear(t, "stable", c.Now(), 2.5)
}

func TestFixedClock(t *testing.T) {
	c := &FixedClock{T: 12.5}
	c.Advance()
	assertNear(t, "pinned", c.Now(), 12.5)
}

func TestParseClockKind(t *testing.T) {
	tests := []struct {
		in   string
		want ClockKind
		ok   bool
	}{
		{"wall", ClockWall, true},
		{"frames", ClockFrames, true},
		{"", 0, false},
		{"Wall", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseClockKind(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseClockKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	for _, k := range []ClockKind{ClockWall, ClockFrames} {
		if got, _ := ParseClockKind(k.String()); got != k {
			t.Errorf("round trip of %v = %v", k, got)
		}
	}
}

func TestNewClockKinds(t *testing.T) {
	if _, ok := NewClock(ClockFrames).(*FrameClock); !ok {
		t.Error("NewClock(ClockFrames) is not a FrameClock")
	}
	if _, ok := NewClock(ClockWall).(*WallClock); !ok {
		t.Error("NewClock(ClockWall) is not a WallClock")
	}
}
