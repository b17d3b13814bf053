package logo

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Intensity is the per-frame brightness pulse of the embedded variant.
func Intensity(t float64) float64 {
	return 0.5 + 0.5*math.Sin(13*t)
}

// Tint returns the color modulation at time t: a pulsing intensity times
// three slowly drifting channel multipliers.
func Tint(t float64) Color {
	a := Intensity(t)
	return Color{
		R: a * (0.5 + 0.5*math.Sin(t)),
		G: a * (0.5 + 0.5*math.Sin(1.3*t)),
		B: a * (0.5 + 0.5*math.Sin(1.7*t)),
		A: 1,
	}
}

// Fade ramps the frame brightness from black to full over the first seconds
// of the run. The tween is only ever evaluated with Set, so the brightness is
// a pure function of the time passed in.
type Fade struct {
	tween    *gween.Tween
	duration float64
}

// NewFade returns a fade over duration seconds. A non-positive duration
// yields a Fade that always reports full brightness.
func NewFade(duration float64) *Fade {
	if duration <= 0 {
		return &Fade{}
	}
	return &Fade{
		tween:    gween.New(0, 1, float32(duration), ease.OutQuad),
		duration: duration,
	}
}

// At returns the brightness factor in [0, 1] at time t.
func (f *Fade) At(t float64) float64 {
	if f == nil || f.tween == nil || t >= f.duration {
		return 1
	}
	if t <= 0 {
		return 0
	}
	v, _ := f.tween.Set(float32(t))
	return clamp01(float64(v))
}
