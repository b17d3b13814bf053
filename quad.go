package logo

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultGridCells is the per-axis subdivision of the shared quad.
const DefaultGridCells = 8

// Quad is the unit square every element is drawn with: corners at (±1, ±1)
// on the z=0 plane, texture (0,0) at the top-left corner (-1, +1). It is
// stored as a cells x cells grid so CPU projection can approximate
// perspective-correct texturing. Read-only after NewQuad.
type Quad struct {
	cells int
	// Positions in model space and normalized texture coordinates, row-major,
	// (cells+1)^2 entries.
	pos []mgl64.Vec2
	uv  []mgl64.Vec2
	// Indices are shared by every draw.
	Indices []uint16
}

// NewQuad builds the grid. cells below 1 is raised to 1.
func NewQuad(cells int) *Quad {
	if cells < 1 {
		cells = 1
	}
	vn := cells + 1
	q := &Quad{
		cells:   cells,
		pos:     make([]mgl64.Vec2, vn*vn),
		uv:      make([]mgl64.Vec2, vn*vn),
		Indices: make([]uint16, 0, cells*cells*6),
	}
	for r := 0; r < vn; r++ {
		for c := 0; c < vn; c++ {
			u := float64(c) / float64(cells)
			v := float64(r) / float64(cells)
			idx := r*vn + c
			q.uv[idx] = mgl64.Vec2{u, v}
			q.pos[idx] = mgl64.Vec2{2*u - 1, 1 - 2*v}
		}
	}
	for r := 0; r < cells; r++ {
		for c := 0; c < cells; c++ {
			tl := uint16(r*vn + c)
			tr := tl + 1
			bl := uint16((r+1)*vn + c)
			br := bl + 1
			q.Indices = append(q.Indices, tl, bl, tr, tr, bl, br)
		}
	}
	return q
}

// Cells returns the per-axis subdivision.
func (q *Quad) Cells() int { return q.cells }

// NumVertices returns the vertex count.
func (q *Quad) NumVertices() int { return len(q.pos) }

// Corners returns the four corner positions in model space, clockwise from
// the top-left.
func (q *Quad) Corners() [4]mgl64.Vec2 {
	return [4]mgl64.Vec2{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
}

// Project fills dst with screen-space vertices for the quad transformed by
// mvp on a width x height target, sampling a srcW x srcH image. dst must hold
// NumVertices entries. Vertex colors carry tint.
func (q *Quad) Project(dst []ebiten.Vertex, mvp mgl64.Mat4, width, height int, srcW, srcH float64, tint Color) {
	cr, cg, cb := float32(tint.R), float32(tint.G), float32(tint.B)
	for i, p := range q.pos {
		ndcX, ndcY, _ := projectPoint(mvp, p[0], p[1])
		sx, sy := ndcToScreen(ndcX, ndcY, width, height)
		dst[i] = ebiten.Vertex{
			DstX:   float32(sx),
			DstY:   float32(sy),
			SrcX:   float32(q.uv[i][0] * srcW),
			SrcY:   float32(q.uv[i][1] * srcH),
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: 1,
		}
	}
}

// ScreenCorners projects the four corners through mvp into pixels.
func (q *Quad) ScreenCorners(mvp mgl64.Mat4, width, height int) [4]mgl64.Vec2 {
	var out [4]mgl64.Vec2
	for i, c := range q.Corners() {
		ndcX, ndcY, _ := projectPoint(mvp, c[0], c[1])
		sx, sy := ndcToScreen(ndcX, ndcY, width, height)
		out[i] = mgl64.Vec2{sx, sy}
	}
	return out
}

// footprint returns the larger screen-space edge length of projected corners.
func footprint(corners [4]mgl64.Vec2) float64 {
	w := max(corners[1].Sub(corners[0]).Len(), corners[2].Sub(corners[3]).Len())
	h := max(corners[3].Sub(corners[0]).Len(), corners[2].Sub(corners[1]).Len())
	return max(w, h)
}
