package logo

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewBackend returns the backend of a variant: the matrix stack for the
// desktop, the Kage program for the embedded board.
func NewBackend(v Variant, quad *Quad) (Backend, error) {
	switch v {
	case VariantDesktop:
		return NewStackBackend(quad), nil
	case VariantEmbedded:
		return NewShaderBackend(quad)
	default:
		return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, v)
	}
}

// Run loads the textures, builds the backend for cfg.Variant and blocks in
// the Ebitengine loop until the exit condition is observed. Start-up failures
// are returned as *TextureError, *ShaderError or a config error.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	textures, err := LoadTextureSet(os.DirFS(cfg.AssetDir))
	if err != nil {
		return err
	}
	defer textures.Dispose()

	quad := NewQuad(cfg.GridCells)
	backend, err := NewBackend(cfg.Variant, quad)
	if err != nil {
		return err
	}
	if sb, ok := backend.(*ShaderBackend); ok {
		defer sb.Dispose()
	}

	var fade *Fade
	if cfg.FadeIn > 0 {
		fade = NewFade(cfg.FadeIn.Seconds())
	}
	builder := NewFrameBuilder(NewSceneSet(cfg.Events), NewCamera(cfg.Variant), textures, cfg.Tint, fade)
	driver := NewDriver(cfg, newEbitenDisplay(cfg.Width, cfg.Height), NewClock(cfg.Clock), builder, backend)

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := LoadScript(data)
		if err != nil {
			return err
		}
		driver.SetScript(script)
	}

	Logger().Info("starting",
		"variant", cfg.Variant.String(),
		"backend", backend.Name(),
		"events", cfg.Events,
		"clock", cfg.Clock.String(),
		"exit_on_key", cfg.ExitOnKey)

	if err := ebiten.RunGame(driver); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run loop: %w", err)
	}
	Logger().Info("stopped", "frames", driver.Frames())
	return nil
}
