package logo

import (
	"flag"
	"fmt"
)

// BindFlags registers the options shared by both commands on fs, using the
// current values of cfg as defaults. The returned function must be called
// after fs.Parse to apply flags that need conversion.
func BindFlags(fs *flag.FlagSet, cfg *Config) func() error {
	clock := fs.String("clock", cfg.Clock.String(), "animation time source: wall or frames")
	windowed := fs.Bool("windowed", !cfg.Fullscreen, "run in a window instead of fullscreen")

	fs.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "directory holding the texture images")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "surface width (0 uses the display mode)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "surface height (0 uses the display mode)")
	fs.DurationVar(&cfg.FrameSleep, "sleep", cfg.FrameSleep, "pause after each presented frame")
	fs.DurationVar(&cfg.FadeIn, "fade", cfg.FadeIn, "fade in from black over this duration")
	fs.BoolVar(&cfg.ExitOnKey, "exit-on-key", cfg.ExitOnKey, "exit when any key is pressed")
	fs.BoolVar(&cfg.Tint, "tint", cfg.Tint, "pulse the color of the textures")
	fs.IntVar(&cfg.GridCells, "grid", cfg.GridCells, "quad subdivision per axis")
	fs.BoolVar(&cfg.ShowFPS, "fps", cfg.ShowFPS, "show the frame rate")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log per-frame statistics")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "JSON capture script")
	fs.StringVar(&cfg.ScreenshotDir, "screenshots", cfg.ScreenshotDir, "directory for screenshots")

	return func() error {
		kind, ok := ParseClockKind(*clock)
		if !ok {
			return fmt.Errorf("%w: unknown clock %q", ErrInvalidConfig, *clock)
		}
		cfg.Clock = kind
		cfg.Fullscreen = !*windowed
		return cfg.Validate()
	}
}
