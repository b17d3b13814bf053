package logo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// ShaderError reports a Kage program that failed to compile.
type ShaderError struct {
	Name string
	Err  error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("compile shader %s: %v", e.Name, e.Err)
}

func (e *ShaderError) Unwrap() error { return e.Err }

// quadShaderSrc maps each covered pixel back onto the unit quad through the
// inverse model-view-projection matrix, samples the texture bilinearly with
// edge clamping and multiplies the tint. Transform holds the inverse matrix.
const quadShaderSrc = `//kage:unit pixels
package main

var Transform mat4
var Tint vec3
var Viewport vec2

func texel(p vec2) vec4 {
	lo := imageSrc0Origin() + 0.5
	hi := imageSrc0Origin() + imageSrc0Size() - 0.5
	return imageSrc0At(clamp(p, lo, hi))
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := (dstPos.xy - imageDstOrigin()) / Viewport
	ndc := vec2(p.x*2-1, 1-p.y*2)
	n := Transform * vec4(ndc, -1, 1)
	f := Transform * vec4(ndc, 1, 1)
	p0 := n.xyz / n.w
	p1 := f.xyz / f.w
	d := p1 - p0
	if abs(d.z) < 1e-6 {
		discard()
	}
	q := p0 - d*(p0.z/d.z)
	if abs(q.x) > 1 || abs(q.y) > 1 {
		discard()
	}
	uv := vec2(q.x+1, 1-q.y) * 0.5
	pos := imageSrc0Origin() + uv*imageSrc0Size() - 0.5
	base := floor(pos)
	w := pos - base
	c00 := texel(base + vec2(0.5, 0.5))
	c10 := texel(base + vec2(1.5, 0.5))
	c01 := texel(base + vec2(0.5, 1.5))
	c11 := texel(base + vec2(1.5, 1.5))
	c := mix(mix(c00, c10, w.x), mix(c01, c11, w.x), w.y)
	return vec4(Tint*c.rgb, 1)
}
`

// quadIndices draws the projected corners as two triangles.
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// ShaderBackend draws each element with one explicit model-view-projection
// matrix handed to a Kage program as a uniform.
type ShaderBackend struct {
	quad     *Quad
	shader   *ebiten.Shader
	verts    [4]ebiten.Vertex
	uniforms map[string]any
	mat      []float32
	tint     []float32
	viewport []float32
}

// NewShaderBackend compiles the quad program.
func NewShaderBackend(quad *Quad) (*ShaderBackend, error) {
	return newShaderBackend(quad, "quad", quadShaderSrc)
}

func newShaderBackend(quad *Quad, name, src string) (*ShaderBackend, error) {
	sh, err := ebiten.NewShader([]byte(src))
	if err != nil {
		return nil, &ShaderError{Name: name, Err: err}
	}
	b := &ShaderBackend{
		quad:     quad,
		shader:   sh,
		mat:      make([]float32, 16),
		tint:     make([]float32, 3),
		viewport: make([]float32, 2),
	}
	b.uniforms = map[string]any{
		"Transform": b.mat,
		"Tint":      b.tint,
		"Viewport":  b.viewport,
	}
	return b, nil
}

// Name implements Backend.
func (b *ShaderBackend) Name() string { return "shader" }

// Dispose releases the compiled program.
func (b *ShaderBackend) Dispose() {
	if b.shader != nil {
		b.shader.Deallocate()
		b.shader = nil
	}
}

// Submit implements Backend.
func (b *ShaderBackend) Submit(target *ebiten.Image, f *Frame) {
	b.viewport[0] = float32(f.Width)
	b.viewport[1] = float32(f.Height)
	for i := range f.Commands {
		cmd := &f.Commands[i]
		if cmd.Texture == nil {
			continue
		}
		corners := b.quad.ScreenCorners(cmd.MVP, f.Width, f.Height)
		img := cmd.Texture.Level(cmd.Texture.LevelFor(footprint(corners)))
		iw, ih := float32(img.Bounds().Dx()), float32(img.Bounds().Dy())

		setUniformMatrix(b.mat, cmd.MVP.Inv())
		b.tint[0] = float32(cmd.Tint.R)
		b.tint[1] = float32(cmd.Tint.G)
		b.tint[2] = float32(cmd.Tint.B)

		src := [4][2]float32{{0, 0}, {iw, 0}, {iw, ih}, {0, ih}}
		for k, c := range corners {
			b.verts[k] = ebiten.Vertex{
				DstX: float32(c[0]), DstY: float32(c[1]),
				SrcX: src[k][0], SrcY: src[k][1],
				ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			}
		}

		var op ebiten.DrawTrianglesShaderOptions
		op.Uniforms = b.uniforms
		op.Images[0] = img
		op.Blend = cmd.BlendMode.EbitenBlend()
		target.DrawTrianglesShader(b.verts[:], quadIndices, b.shader, &op)
	}
}

// setUniformMatrix copies m into dst in column-major order, the layout both
// mgl64 and Kage use.
func setUniformMatrix(dst []float32, m mgl64.Mat4) {
	for i := range m {
		dst[i] = float32(m[i])
	}
}
