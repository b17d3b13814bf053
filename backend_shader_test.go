package logo

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestSetUniformMatrixColumnMajor(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3)
	dst := make([]float32, 16)
	setUniformMatrix(dst, m)
	// Translation lives in the last column: elements 12..14.
	if dst[12] != 1 || dst[13] != 2 || dst[14] != 3 || dst[15] != 1 {
		t.Errorf("last column = %v", dst[12:])
	}
	if dst[0] != 1 || dst[5] != 1 || dst[10] != 1 {
		t.Errorf("diagonal = %v %v %v", dst[0], dst[5], dst[10])
	}
}

func TestInverseMVPUnprojectsCorners(t *testing.T) {
	// The shader maps a pixel back onto the quad plane with the inverse MVP.
	// Check the same math on the CPU: every projected corner returns to itself.
	var f Frame
	newTestBuilder(VariantEmbedded, false, true, nil).Build(&f, 0, 0.8, 1920, 1080)
	q := NewQuad(1)
	for _, cmd := range f.Commands {
		inv := cmd.MVP.Inv()
		for _, c := range q.Corners() {
			x, y, _ := projectPoint(cmd.MVP, c[0], c[1])
			near := inv.Mul4x1(mgl64.Vec4{x, y, -1, 1})
			far := inv.Mul4x1(mgl64.Vec4{x, y, 1, 1})
			p0 := near.Vec3().Mul(1 / near[3])
			p1 := far.Vec3().Mul(1 / far[3])
			s := p0[2] / (p0[2] - p1[2])
			hit := p0.Add(p1.Sub(p0).Mul(s))
			if !mgl64.FloatEqualThreshold(hit[0], c[0], 1e-6) || !mgl64.FloatEqualThreshold(hit[1], c[1], 1e-6) {
				t.Errorf("%s corner %v unprojected to %v", cmd.Element.Name, c, hit)
			}
		}
	}
}

func TestNewBackendEmbedded(t *testing.T) {
	b, err := NewBackend(VariantEmbedded, NewQuad(1))
	if err != nil {
		t.Fatalf("NewBackend(embedded) = %v", err)
	}
	sb, ok := b.(*ShaderBackend)
	if !ok {
		t.Fatalf("embedded backend = %T, want *ShaderBackend", b)
	}
	defer sb.Dispose()
	if sb.Name() != "shader" {
		t.Errorf("Name = %q", sb.Name())
	}
	for _, name := range []string{"Transform", "Tint", "Viewport"} {
		if _, ok := sb.uniforms[name]; !ok {
			t.Errorf("uniform %s not bound", name)
		}
	}
}

func TestShaderBackendCompileError(t *testing.T) {
	_, err := newShaderBackend(NewQuad(1), "broken", "//kage:unit pixels\npackage main\n\nfunc Fragment(")
	var se *ShaderError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *ShaderError", err)
	}
	if se.Name != "broken" || se.Err == nil {
		t.Errorf("ShaderError = %+v", se)
	}
}

func TestShaderSubmitDraws(t *testing.T) {
	set, err := LoadTextureSet(textureFS(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	defer set.Dispose()
	backend, err := NewShaderBackend(NewQuad(1))
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Dispose()

	builder := NewFrameBuilder(NewSceneSet(false), NewCamera(VariantEmbedded), set, true, nil)
	var f Frame
	builder.Build(&f, 0, 0.8, 64, 48)
	target := ebiten.NewImage(64, 48)
	defer target.Deallocate()
	backend.Submit(target, &f)

	assertNear(t, "viewport w", float64(backend.viewport[0]), 64)
	assertNear(t, "viewport h", float64(backend.viewport[1]), 48)
	// The last command's uniforms remain: inverse MVP and the frame tint.
	last := f.Commands[len(f.Commands)-1]
	want := make([]float32, 16)
	setUniformMatrix(want, last.MVP.Inv())
	for i := range want {
		if backend.mat[i] != want[i] {
			t.Fatalf("Transform[%d] = %v, want %v", i, backend.mat[i], want[i])
		}
	}
	if backend.tint[0] != float32(f.Tint.R) || backend.tint[2] != float32(f.Tint.B) {
		t.Errorf("Tint = %v, want %+v", backend.tint, f.Tint)
	}
}

func TestShaderSubmitSkipsMissingTextures(t *testing.T) {
	backend, err := NewShaderBackend(NewQuad(1))
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Dispose()
	var f Frame
	newTestBuilder(VariantEmbedded, true, true, nil).Build(&f, 0, 1, 32, 32)
	target := ebiten.NewImage(32, 32)
	defer target.Deallocate()
	backend.Submit(target, &f)
	if backend.mat[0] != 0 {
		t.Error("uniforms written for a frame without textures")
	}
}

func TestShaderErrorMessage(t *testing.T) {
	inner := errors.New("syntax")
	err := error(&ShaderError{Name: "quad", Err: inner})
	if !errors.Is(err, inner) {
		t.Error("ShaderError does not unwrap")
	}
	if !strings.Contains(err.Error(), "quad") {
		t.Errorf("message = %q", err.Error())
	}
}
