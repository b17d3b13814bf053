package logo

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // decoder registration
	_ "image/jpeg" // decoder registration
	_ "image/png"  // decoder registration
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"  // decoder registration
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // decoder registration
	_ "golang.org/x/image/webp" // decoder registration
)

// TextureError reports a texture file that could not be loaded.
type TextureError struct {
	File string
	Err  error
}

func (e *TextureError) Error() string {
	return fmt.Sprintf("could not load file: %s: %v", e.File, e.Err)
}

func (e *TextureError) Unwrap() error { return e.Err }

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Texture is one decoded image uploaded with its mip chain. Level 0 is the
// full-resolution image; each following level halves both dimensions.
type Texture struct {
	ID     TextureID
	File   string
	Width  int
	Height int
	levels []*ebiten.Image
}

// Levels returns the number of mip levels.
func (tx *Texture) Levels() int {
	return len(tx.levels)
}

// Level returns mip level i, clamped to the available range.
func (tx *Texture) Level(i int) *ebiten.Image {
	if len(tx.levels) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(tx.levels) {
		i = len(tx.levels) - 1
	}
	return tx.levels[i]
}

// LevelFor picks the mip level for a texture drawn footprint pixels wide on
// screen: the smallest level still at least that wide.
func (tx *Texture) LevelFor(footprint float64) int {
	return mipLevelFor(tx.Width, footprint, len(tx.levels))
}

func mipLevelFor(width int, footprint float64, levels int) int {
	if levels <= 1 || footprint <= 0 || footprint >= float64(width) {
		return 0
	}
	lvl := int(math.Floor(math.Log2(float64(width) / footprint)))
	if lvl >= levels {
		lvl = levels - 1
	}
	if lvl < 0 {
		lvl = 0
	}
	return lvl
}

// TextureSet owns every texture of the process. It is filled once by
// LoadTextureSet and read-only afterwards.
type TextureSet struct {
	textures [numTextures]*Texture
}

// Get returns the texture for id.
func (s *TextureSet) Get(id TextureID) *Texture {
	if s == nil || id >= numTextures {
		return nil
	}
	return s.textures[id]
}

// Dispose releases every GPU image. The set must not be used afterwards.
func (s *TextureSet) Dispose() {
	for i, tx := range s.textures {
		if tx == nil {
			continue
		}
		for _, img := range tx.levels {
			img.Deallocate()
		}
		s.textures[i] = nil
	}
}

// LoadTextureSet decodes every texture file from fsys and uploads it with a
// mip chain. The first failure aborts loading and names the file.
func LoadTextureSet(fsys fs.FS) (*TextureSet, error) {
	set := &TextureSet{}
	for id := TextureID(0); id < numTextures; id++ {
		name := id.File()
		rgb, err := decodeFile(fsys, name)
		if err != nil {
			set.Dispose()
			return nil, &TextureError{File: name, Err: err}
		}
		chain := buildMipChain(rgb)
		tx := &Texture{
			ID:     id,
			File:   name,
			Width:  rgb.Bounds().Dx(),
			Height: rgb.Bounds().Dy(),
			levels: make([]*ebiten.Image, len(chain)),
		}
		for i, lvl := range chain {
			tx.levels[i] = ebiten.NewImageFromImage(lvl)
		}
		set.textures[id] = tx
		Logger().Debug("texture loaded", "file", name, "width", tx.Width, "height", tx.Height, "levels", len(chain))
	}
	return set, nil
}

// decodeFile reads and decodes one image, converting it to opaque RGB.
func decodeFile(fsys fs.FS, name string) (*image.RGBA, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return toOpaqueRGB(img)
}

// toOpaqueRGB keeps the straight-alpha color channels of img and drops its
// alpha, the way a 3-channel GL_RGB upload does.
func toOpaqueRGB(img image.Image) (*image.RGBA, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			i := out.PixOffset(x-b.Min.X, y-b.Min.Y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 0xff
		}
	}
	return out, nil
}

// buildMipChain returns img followed by successively halved copies down to a
// single pixel in the larger dimension.
func buildMipChain(img *image.RGBA) []*image.RGBA {
	chain := []*image.RGBA{img}
	cur := img
	for {
		w, h := cur.Bounds().Dx(), cur.Bounds().Dy()
		if w <= 1 && h <= 1 {
			return chain
		}
		nw, nh := max(w/2, 1), max(h/2, 1)
		next := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.BiLinear.Scale(next, next.Bounds(), cur, cur.Bounds(), draw.Src, nil)
		chain = append(chain, next)
		cur = next
	}
}
