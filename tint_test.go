package logo

import (
	"math"
	"testing"
)

func TestIntensityExtremes(t *testing.T) {
	peak := math.Pi / 26   // sin(13t) = 1
	trough := 3 * peak     // sin(13t) = -1
	assertNear(t, "peak", Intensity(peak), 1)
	assertNear(t, "trough", Intensity(trough), 0)
}

func TestTintDarkAtTrough(t *testing.T) {
	c := Tint(3 * math.Pi / 26)
	assertNear(t, "R", c.R, 0)
	assertNear(t, "G", c.G, 0)
	assertNear(t, "B", c.B, 0)
	assertNear(t, "A", c.A, 1)
}

func TestTintChannels(t *testing.T) {
	ts := 0.4
	a := 0.5 + 0.5*math.Sin(13*ts)
	c := Tint(ts)
	assertNear(t, "R", c.R, a*(0.5+0.5*math.Sin(ts)))
	assertNear(t, "G", c.G, a*(0.5+0.5*math.Sin(1.3*ts)))
	assertNear(t, "B", c.B, a*(0.5+0.5*math.Sin(1.7*ts)))
}

func TestTintInRange(t *testing.T) {
	for ts := 0.0; ts < 20; ts += 0.037 {
		c := Tint(ts)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Fatalf("Tint(%v) = %+v out of [0, 1]", ts, c)
			}
		}
	}
}

func TestFadeDisabled(t *testing.T) {
	var nilFade *Fade
	assertNear(t, "nil", nilFade.At(0), 1)
	assertNear(t, "zero duration", NewFade(0).At(0), 1)
}

func TestFadeRamp(t *testing.T) {
	f := NewFade(2)
	assertNear(t, "start", f.At(0), 0)
	assertNear(t, "before start", f.At(-1), 0)
	assertNear(t, "end", f.At(2), 1)
	assertNear(t, "after end", f.At(30), 1)

	prev := 0.0
	for ts := 0.1; ts < 2; ts += 0.1 {
		v := f.At(ts)
		if v < prev {
			t.Fatalf("fade decreased at %v: %v < %v", ts, v, prev)
		}
		prev = v
	}
}

func TestFadeIsStateless(t *testing.T) {
	f := NewFade(3)
	a := f.At(1.5)
	f.At(2.9)
	f.At(0.2)
	if b := f.At(1.5); math.Abs(a-b) > 1e-6 {
		t.Errorf("At(1.5) = %v then %v", a, b)
	}
}

func TestColorScale(t *testing.T) {
	c := Color{0.5, 0.25, 1, 0.8}.Scale(0.5)
	assertNear(t, "R", c.R, 0.25)
	assertNear(t, "G", c.G, 0.125)
	assertNear(t, "B", c.B, 0.5)
	assertNear(t, "A", c.A, 0.8)
}
