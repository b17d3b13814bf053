package logo

import (
	"math"
	"strconv"
)

// TextureID names one image of the texture set.
type TextureID uint8

const (
	TextureRadial0 TextureID = iota
	TextureRadial1
	TextureRadial2
	TextureArrow
	TextureEvents
	TextureText
	numTextures
)

// textureFiles lists the file names in TextureID order.
var textureFiles = [numTextures]string{
	"radial0.png",
	"radial1.png",
	"radial2.png",
	"arrow.png",
	"events.png",
	"text.png",
}

// File returns the image file name for the texture.
func (id TextureID) File() string {
	if id >= numTextures {
		return ""
	}
	return textureFiles[id]
}

// TextureFiles returns the file names of every texture in load order.
func TextureFiles() []string {
	out := make([]string, numTextures)
	copy(out, textureFiles[:])
	return out
}

// Element is one animated quad: a texture, a uniform quad scale and the
// ordered local transform steps that place it. Elements are defined once and
// never mutated.
type Element struct {
	Name    string
	Texture TextureID
	Scale   float64
	Steps   []Step
}

// Quad scale of the two arrow panels.
const arrowScale = 0.4

// RadialOuterAngle is the vertical-axis swing shared by the three radial arms.
func RadialOuterAngle(t float64) float64 {
	return 20 * math.Cos(2*t)
}

// RadialSpinAngle is the depth-axis spin of radial arm i.
func RadialSpinAngle(i int, t float64) float64 {
	return 32 * t * (0.5 + float64(i-1))
}

// TextAngle is the vertical-axis swing of the text panel.
func TextAngle(t float64) float64 {
	return 60 * math.Sin(t)
}

// EventsAngle is the vertical-axis swing of the events panel.
func EventsAngle(t float64) float64 {
	return 30 * math.Sin(t)
}

// ArrowLowerAngle is the vertical-axis rotation of the lower arrow panel.
func ArrowLowerAngle(t float64) float64 {
	return -50 + 20*math.Cos(2*t)
}

// ArrowUpperAngle is the vertical-axis rotation of the upper arrow panel.
func ArrowUpperAngle(t float64) float64 {
	return 50 + 20*math.Cos(2.5*t)
}

// RadialArm returns radial arm i (0, 1 or 2).
func RadialArm(i int) *Element {
	if i < 0 || i > 2 {
		panic("logo: radial arm index out of range")
	}
	return &Element{
		Name:    "radial" + strconv.Itoa(i),
		Texture: TextureRadial0 + TextureID(i),
		Scale:   1,
		Steps: []Step{
			Rotate(AxisVertical, RadialOuterAngle),
			Translate(0, 0.8, 0),
			Rotate(AxisDepth, func(t float64) float64 { return RadialSpinAngle(i, t) }),
		},
	}
}

// TextPanel returns the text panel below the radial arms.
func TextPanel() *Element {
	return &Element{
		Name:    "text",
		Texture: TextureText,
		Scale:   1,
		Steps: []Step{
			Rotate(AxisVertical, TextAngle),
			Translate(0, -0.8, 0),
		},
	}
}

// EventsPanel returns the centered events panel.
func EventsPanel() *Element {
	return &Element{
		Name:    "events",
		Texture: TextureEvents,
		Scale:   1,
		Steps: []Step{
			Rotate(AxisVertical, EventsAngle),
		},
	}
}

// ArrowLower returns the lower arrow panel.
func ArrowLower() *Element {
	return &Element{
		Name:    "arrow-lower",
		Texture: TextureArrow,
		Scale:   arrowScale,
		Steps: []Step{
			Translate(0, -1.5, 0),
			Rotate(AxisVertical, ArrowLowerAngle),
		},
	}
}

// ArrowUpper returns the upper arrow panel.
func ArrowUpper() *Element {
	return &Element{
		Name:    "arrow-upper",
		Texture: TextureArrow,
		Scale:   arrowScale,
		Steps: []Step{
			Translate(0, 1.5, 0),
			Rotate(AxisVertical, ArrowUpperAngle),
		},
	}
}
