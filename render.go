package logo

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderCommand is one draw of the shared quad.
type RenderCommand struct {
	Element   *Element
	Texture   *Texture // nil when no texture set is attached
	Model     mgl64.Mat4
	MVP       mgl64.Mat4
	Tint      Color
	BlendMode BlendMode
}

// Frame is everything a backend needs to draw one frame. Frames are rebuilt
// in place every tick; backends must not retain them.
type Frame struct {
	Index  uint64
	Time   float64
	Scene  *Scene
	Width  int
	Height int

	Camera         Camera
	Projection     mgl64.Mat4
	ViewProjection mgl64.Mat4
	Tint           Color

	Commands []RenderCommand
}

// Backend submits a frame's commands to a target image.
type Backend interface {
	Name() string
	Submit(target *ebiten.Image, f *Frame)
}

// FrameBuilder turns (time, display size) into a Frame. It owns the scenes,
// the camera and the texture set; all of them are fixed at construction.
type FrameBuilder struct {
	scenes   *SceneSet
	camera   Camera
	textures *TextureSet
	tinted   bool
	fade     *Fade
	blend    BlendMode
}

// NewFrameBuilder wires the static collaborators. textures may be nil.
func NewFrameBuilder(scenes *SceneSet, camera Camera, textures *TextureSet, tinted bool, fade *Fade) *FrameBuilder {
	return &FrameBuilder{
		scenes:   scenes,
		camera:   camera,
		textures: textures,
		tinted:   tinted,
		fade:     fade,
		blend:    BlendAdd,
	}
}

// Build fills f for time t on a width x height display. The command slice is
// reused between calls.
func (b *FrameBuilder) Build(f *Frame, index uint64, t float64, width, height int) {
	f.Index = index
	f.Time = t
	f.Width = width
	f.Height = height
	f.Scene = b.scenes.Select(t)
	f.Camera = b.camera
	f.Projection = b.camera.Projection(width, height)
	f.ViewProjection = f.Projection.Mul4(b.camera.View(t))

	tint := ColorWhite
	if b.tinted {
		tint = Tint(t)
	}
	f.Tint = tint.Scale(b.fade.At(t))

	f.Commands = f.Commands[:0]
	for _, e := range f.Scene.Elements {
		model := Compose(t, e)
		f.Commands = append(f.Commands, RenderCommand{
			Element:   e,
			Texture:   b.textures.Get(e.Texture),
			Model:     model,
			MVP:       f.ViewProjection.Mul4(model),
			Tint:      f.Tint,
			BlendMode: b.blend,
		})
	}
}
