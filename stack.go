package logo

import "github.com/go-gl/mathgl/mgl64"

// MatrixStack is a retained model-view stack in the style of the legacy
// OpenGL matrix mode: operations post-multiply the top matrix, Push saves it
// and Pop restores it. Not safe for concurrent use.
type MatrixStack struct {
	top   mgl64.Mat4
	saved []mgl64.Mat4
}

// NewMatrixStack returns a stack whose top is the identity.
func NewMatrixStack() *MatrixStack {
	return &MatrixStack{top: mgl64.Ident4(), saved: make([]mgl64.Mat4, 0, 4)}
}

// LoadIdentity replaces the top matrix with the identity.
func (s *MatrixStack) LoadIdentity() {
	s.top = mgl64.Ident4()
}

// Load replaces the top matrix with m.
func (s *MatrixStack) Load(m mgl64.Mat4) {
	s.top = m
}

// Mult post-multiplies the top matrix by m.
func (s *MatrixStack) Mult(m mgl64.Mat4) {
	s.top = s.top.Mul4(m)
}

// Rotate post-multiplies a rotation of deg degrees about axis.
func (s *MatrixStack) Rotate(deg float64, axis mgl64.Vec3) {
	s.Mult(mgl64.HomogRotate3D(mgl64.DegToRad(deg), axis))
}

// Translate post-multiplies a translation.
func (s *MatrixStack) Translate(x, y, z float64) {
	s.Mult(mgl64.Translate3D(x, y, z))
}

// Scale post-multiplies a scale.
func (s *MatrixStack) Scale(x, y, z float64) {
	s.Mult(mgl64.Scale3D(x, y, z))
}

// Push saves a copy of the top matrix.
func (s *MatrixStack) Push() {
	s.saved = append(s.saved, s.top)
}

// Pop restores the most recently pushed matrix.
// Panics when there is nothing to pop.
func (s *MatrixStack) Pop() {
	n := len(s.saved)
	if n == 0 {
		panic("logo: matrix stack underflow")
	}
	s.top = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

// Depth returns the number of pushed matrices.
func (s *MatrixStack) Depth() int {
	return len(s.saved)
}

// Top returns the current matrix.
func (s *MatrixStack) Top() mgl64.Mat4 {
	return s.top
}

// Apply replays a step on the stack.
func (s *MatrixStack) Apply(t float64, step Step) {
	switch step.Kind {
	case StepRotate:
		s.Rotate(step.Degrees(t), step.Axis)
	case StepTranslate:
		s.Translate(step.Offset[0], step.Offset[1], step.Offset[2])
	}
}

// ApplyElement replays all steps of e followed by its quad scale. Callers
// bracket it with Push and Pop.
func (s *MatrixStack) ApplyElement(t float64, e *Element) {
	for _, step := range e.Steps {
		s.Apply(t, step)
	}
	if e.Scale != 1 {
		s.Scale(e.Scale, e.Scale, 1)
	}
}
