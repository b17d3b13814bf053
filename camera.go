package logo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera defaults shared by both variants.
const (
	DefaultFOV      = 50.0 // vertical field of view, degrees
	DefaultNear     = 0.1
	DefaultFar      = 1000.0
	DefaultDistance = 3.0 // camera pull-back along -Z
	mountRotation   = -90.0
	mirrorRotation  = 180.0
)

// Camera is the fixed perspective projection plus the fixed view correction
// for the physically rotated display. It holds no per-frame state.
type Camera struct {
	FOV      float64 // vertical field of view, degrees
	Near     float64
	Far      float64
	Distance float64

	// Mirror adds the 180 degree vertical-axis flip the desktop path needs to
	// match the embedded path's horizontal orientation.
	Mirror bool
	// Jitter enables the small oscillating camera offset of the embedded path.
	Jitter bool
}

// NewCamera returns the camera for a variant.
func NewCamera(v Variant) Camera {
	return Camera{
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Distance: DefaultDistance,
		Mirror:   v == VariantDesktop,
		Jitter:   v == VariantEmbedded,
	}
}

// JitterOffset returns the camera shake at time t.
func JitterOffset(t float64) (x, y float64) {
	s := math.Sin(3.5 * t)
	return 0.2 * math.Sin(32*t) * s, 0.1 * math.Sin(23*t) * s
}

// Projection returns the perspective matrix for a width x height display.
// A zero height is treated as a square display.
func (c Camera) Projection(width, height int) mgl64.Mat4 {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// View returns the view matrix at time t. Only the jitter depends on t.
func (c Camera) View(t float64) mgl64.Mat4 {
	s := NewMatrixStack()
	c.apply(s, t)
	return s.Top()
}

// apply replays the camera correction on a matrix stack.
func (c Camera) apply(s *MatrixStack, t float64) {
	var x, y float64
	if c.Jitter {
		x, y = JitterOffset(t)
	}
	s.Translate(x, y, -c.Distance)
	s.Rotate(mountRotation, AxisDepth)
	if c.Mirror {
		s.Rotate(mirrorRotation, AxisVertical)
	}
}

// ViewProjection returns projection * view at time t.
func (c Camera) ViewProjection(t float64, width, height int) mgl64.Mat4 {
	return c.Projection(width, height).Mul4(c.View(t))
}
