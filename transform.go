package logo

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Rotation axes used by the element formulas and the camera correction.
var (
	AxisVertical = mgl64.Vec3{0, 1, 0}
	AxisDepth    = mgl64.Vec3{0, 0, 1}
)

// AngleFunc maps a time value in seconds to a rotation angle in degrees.
type AngleFunc func(t float64) float64

// Constant returns an AngleFunc that ignores time.
func Constant(deg float64) AngleFunc {
	return func(float64) float64 { return deg }
}

// StepKind distinguishes the two transform step variants.
type StepKind uint8

const (
	StepRotate    StepKind = iota // rotate about Axis by Angle(t) degrees
	StepTranslate                 // translate by Offset
)

// Step is one local transform in an element's ordered step list. Steps are
// applied in the frame established by all previous steps, the same nesting a
// glRotate/glTranslate sequence produces on a matrix stack.
type Step struct {
	Kind   StepKind
	Axis   mgl64.Vec3
	Angle  AngleFunc
	Offset mgl64.Vec3
}

// Rotate creates a rotation step about a unit axis.
func Rotate(axis mgl64.Vec3, angle AngleFunc) Step {
	return Step{Kind: StepRotate, Axis: axis, Angle: angle}
}

// Translate creates a translation step.
func Translate(x, y, z float64) Step {
	return Step{Kind: StepTranslate, Offset: mgl64.Vec3{x, y, z}}
}

// Degrees returns the rotation angle of a StepRotate at time t.
// Translation steps report zero.
func (s Step) Degrees(t float64) float64 {
	if s.Kind != StepRotate || s.Angle == nil {
		return 0
	}
	return s.Angle(t)
}

// Matrix returns the 4x4 matrix of this step at time t.
func (s Step) Matrix(t float64) mgl64.Mat4 {
	switch s.Kind {
	case StepRotate:
		return mgl64.HomogRotate3D(mgl64.DegToRad(s.Degrees(t)), s.Axis)
	case StepTranslate:
		return mgl64.Translate3D(s.Offset[0], s.Offset[1], s.Offset[2])
	default:
		return mgl64.Ident4()
	}
}

// ComposeSteps multiplies the steps in order: result = S0 * S1 * ... * Sn.
func ComposeSteps(t float64, steps []Step) mgl64.Mat4 {
	m := mgl64.Ident4()
	for _, s := range steps {
		m = m.Mul4(s.Matrix(t))
	}
	return m
}

// Compose returns the model matrix of e at time t: its steps followed by its
// uniform quad scale. The result is a pure function of t and e.
func Compose(t float64, e *Element) mgl64.Mat4 {
	m := ComposeSteps(t, e.Steps)
	if e.Scale != 1 {
		m = m.Mul4(mgl64.Scale3D(e.Scale, e.Scale, 1))
	}
	return m
}

// projectPoint applies a model-view-projection matrix to a point on the z=0
// plane and returns normalized device coordinates plus clip-space w.
func projectPoint(mvp mgl64.Mat4, x, y float64) (ndcX, ndcY, w float64) {
	v := mvp.Mul4x1(mgl64.Vec4{x, y, 0, 1})
	w = v[3]
	if w == 0 {
		return 0, 0, 0
	}
	return v[0] / w, v[1] / w, w
}

// ndcToScreen maps normalized device coordinates to pixel coordinates of a
// width x height target, origin top-left, Y down.
func ndcToScreen(ndcX, ndcY float64, width, height int) (float64, float64) {
	return (ndcX + 1) * 0.5 * float64(width), (1 - ndcY) * 0.5 * float64(height)
}
