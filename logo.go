package logo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the neutral tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the clear color of every frame.
var ColorBlack = Color{0, 0, 0, 1}

// Scale multiplies the RGB components by k, leaving alpha untouched.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A}
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendAdd    BlendMode = iota // additive, src=ONE dst=ONE
	BlendNormal                  // source-over (standard alpha blending)
	BlendNone                    // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendLighter
	}
}

// Variant identifies one of the two target environments.
type Variant uint8

const (
	VariantDesktop  Variant = iota // fixed-function style, matrix stack backend
	VariantEmbedded                // programmable shader backend
)

// String returns the variant name used on the command line and in logs.
func (v Variant) String() string {
	switch v {
	case VariantDesktop:
		return "desktop"
	case VariantEmbedded:
		return "embedded"
	default:
		return "unknown"
	}
}
