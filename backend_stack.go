package logo

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// StackBackend draws the way a fixed-function pipeline does: the projection
// and camera correction are loaded onto a MatrixStack, and each element is
// drawn between Push and Pop after replaying its steps. Vertices are
// transformed on the CPU and submitted with DrawTriangles.
type StackBackend struct {
	quad  *Quad
	stack *MatrixStack
	verts []ebiten.Vertex // reused vertex buffer
	mvps  []mgl64.Mat4    // per-command transforms of the last replay
}

// NewStackBackend returns a backend drawing quad.
func NewStackBackend(quad *Quad) *StackBackend {
	return &StackBackend{
		quad:  quad,
		stack: NewMatrixStack(),
		verts: make([]ebiten.Vertex, quad.NumVertices()),
	}
}

// Name implements Backend.
func (b *StackBackend) Name() string { return "stack" }

// Replay rebuilds every command's transform on the matrix stack and returns
// them in command order. The returned slice is reused by the next call.
func (b *StackBackend) Replay(f *Frame) []mgl64.Mat4 {
	s := b.stack
	s.Load(f.Projection)
	f.Camera.apply(s, f.Time)

	b.mvps = b.mvps[:0]
	for i := range f.Commands {
		s.Push()
		s.ApplyElement(f.Time, f.Commands[i].Element)
		b.mvps = append(b.mvps, s.Top())
		s.Pop()
	}
	return b.mvps
}

// Submit implements Backend.
func (b *StackBackend) Submit(target *ebiten.Image, f *Frame) {
	mvps := b.Replay(f)
	for i := range f.Commands {
		cmd := &f.Commands[i]
		if cmd.Texture == nil {
			continue
		}
		corners := b.quad.ScreenCorners(mvps[i], f.Width, f.Height)
		lvl := cmd.Texture.LevelFor(footprint(corners))
		img := cmd.Texture.Level(lvl)
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

		b.quad.Project(b.verts, mvps[i], f.Width, f.Height, float64(iw), float64(ih), cmd.Tint)

		var op ebiten.DrawTrianglesOptions
		op.Filter = ebiten.FilterLinear
		op.Blend = cmd.BlendMode.EbitenBlend()
		target.DrawTriangles(b.verts, b.quad.Indices, img, &op)
	}
}
