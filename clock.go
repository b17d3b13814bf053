package logo

import "time"

// FrameStep is the pseudo-time advanced per frame by FrameClock.
const FrameStep = 0.02

// Clock is the animation time source. Now is read once per frame and
// Advance is called once after each presented frame.
type Clock interface {
	Now() float64
	Advance()
}

// ClockKind selects a Clock implementation from configuration.
type ClockKind uint8

const (
	ClockWall   ClockKind = iota // seconds since start
	ClockFrames                  // frame index * FrameStep
)

// String returns the flag value for the clock kind.
func (k ClockKind) String() string {
	switch k {
	case ClockWall:
		return "wall"
	case ClockFrames:
		return "frames"
	default:
		return "unknown"
	}
}

// ParseClockKind parses a -clock flag value.
func ParseClockKind(s string) (ClockKind, bool) {
	switch s {
	case "wall":
		return ClockWall, true
	case "frames":
		return ClockFrames, true
	}
	return 0, false
}

// NewClock returns a fresh clock of the given kind starting at zero.
func NewClock(kind ClockKind) Clock {
	if kind == ClockFrames {
		return &FrameClock{}
	}
	return NewWallClock(time.Now)
}

// WallClock reports fractional seconds elapsed since it was created.
type WallClock struct {
	now   func() time.Time
	start time.Time
}

// NewWallClock starts a wall clock using now as its time source.
func NewWallClock(now func() time.Time) *WallClock {
	return &WallClock{now: now, start: now()}
}

// Now returns seconds since start.
func (c *WallClock) Now() float64 {
	return c.now().Sub(c.start).Seconds()
}

// Advance is a no-op; wall time moves on its own.
func (c *WallClock) Advance() {}

// FrameClock derives time from the number of presented frames.
type FrameClock struct {
	frames uint64
}

// Now returns frames * FrameStep.
func (c *FrameClock) Now() float64 {
	return float64(c.frames) * FrameStep
}

// Advance counts one presented frame.
func (c *FrameClock) Advance() {
	c.frames++
}

// Frames returns the number of presented frames.
func (c *FrameClock) Frames() uint64 {
	return c.frames
}

// FixedClock always reports the same time. Scripts pin the clock with it to
// render chosen instants.
type FixedClock struct {
	T float64
}

// Now returns the pinned time.
func (c *FixedClock) Now() float64 { return c.T }

// Advance is a no-op.
func (c *FixedClock) Advance() {}
