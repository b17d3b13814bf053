package logo

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. Captures are
// written to Config.ScreenshotDir and named after the frame they show.
func (d *Driver) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

// flushScreenshots writes the frame just rendered once per queued label.
func (d *Driver) flushScreenshots(screen *ebiten.Image) {
	if len(d.screenshotQueue) == 0 {
		return
	}
	defer func() { d.screenshotQueue = d.screenshotQueue[:0] }()

	if err := os.MkdirAll(d.cfg.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: create directory", "dir", d.cfg.ScreenshotDir, "err", err)
		return
	}

	img := opaqueFrame(screen)
	for _, label := range d.screenshotQueue {
		path := filepath.Join(d.cfg.ScreenshotDir, screenshotName(&d.frame, label))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot", "err", err)
			continue
		}
		Logger().Info("screenshot written", "path", path, "scene", d.frame.Scene.Name(), "t", d.frame.Time)
	}
}

// opaqueFrame reads the target back. Frames are cleared to opaque black and
// every quad is drawn opaque, so alpha carries no information and is forced
// to 255.
func opaqueFrame(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	forceOpaque(img.Pix)
	return img
}

func forceOpaque(pix []byte) {
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
}

// screenshotName identifies a capture by frame index, scene, label and
// animation time, so a capture script produces stable names across runs.
func screenshotName(f *Frame, label string) string {
	scene := "none"
	if f.Scene != nil {
		scene = f.Scene.Name()
	}
	return fmt.Sprintf("%06d_%s_%s_t%08.3f.png", f.Index, scene, sanitizeLabel(label), f.Time)
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := pngEncoder.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', maps everything
// else to '_' and names empty labels "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
