package logo

import (
	"errors"
	"fmt"
	"time"
)

// Default pacing of the desktop variant, layered on top of the present call.
const DefaultFrameSleep = 16 * time.Millisecond

// Embedded surface size, matching the projector the board drives.
const (
	EmbeddedWidth  = 1920
	EmbeddedHeight = 1080
)

// Config holds the run-time options of one process. Build it with
// DesktopConfig or EmbeddedConfig and override fields as needed.
type Config struct {
	Variant Variant
	Title   string

	// Events enables the alternating events scene.
	Events bool
	// AssetDir is the directory the texture files are read from.
	AssetDir string
	// Clock selects the animation time source.
	Clock ClockKind
	// FrameSleep is slept after every presented frame. Zero relies on the
	// present call alone.
	FrameSleep time.Duration
	// ExitOnKey ends the loop on any key press. When false the process runs
	// until killed.
	ExitOnKey bool
	// Tint enables the pulsing color modulation.
	Tint bool
	// FadeIn ramps brightness up from black at start. Zero disables it.
	FadeIn time.Duration

	Fullscreen bool
	// Width and Height force the surface size. Zero uses the display's
	// current mode.
	Width, Height int
	// GridCells is the per-axis subdivision of the shared quad.
	GridCells int

	ShowFPS       bool
	Debug         bool
	ScreenshotDir string
	// Script is the path of a JSON capture script, empty for none.
	Script string
}

// DesktopConfig returns the defaults of the desktop variant.
func DesktopConfig() Config {
	return Config{
		Variant:       VariantDesktop,
		Title:         "warpzone",
		Events:        true,
		AssetDir:      ".",
		Clock:         ClockWall,
		FrameSleep:    DefaultFrameSleep,
		ExitOnKey:     true,
		Fullscreen:    true,
		GridCells:     DefaultGridCells,
		ScreenshotDir: "screenshots",
	}
}

// EmbeddedConfig returns the defaults of the embedded variant.
func EmbeddedConfig() Config {
	return Config{
		Variant:       VariantEmbedded,
		Title:         "warpzone",
		AssetDir:      ".",
		Clock:         ClockWall,
		Tint:          true,
		Fullscreen:    true,
		Width:         EmbeddedWidth,
		Height:        EmbeddedHeight,
		GridCells:     DefaultGridCells,
		ScreenshotDir: "screenshots",
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// ErrUsage reports missing or extra command-line arguments.
var ErrUsage = errors.New("usage")

// Validate reports the first inconsistent option.
func (c Config) Validate() error {
	switch {
	case c.Variant != VariantDesktop && c.Variant != VariantEmbedded:
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, c.Variant)
	case c.Clock != ClockWall && c.Clock != ClockFrames:
		return fmt.Errorf("%w: unknown clock %d", ErrInvalidConfig, c.Clock)
	case c.FrameSleep < 0:
		return fmt.Errorf("%w: negative frame sleep %v", ErrInvalidConfig, c.FrameSleep)
	case c.FadeIn < 0:
		return fmt.Errorf("%w: negative fade-in %v", ErrInvalidConfig, c.FadeIn)
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case (c.Width == 0) != (c.Height == 0):
		return fmt.Errorf("%w: width and height must be set together", ErrInvalidConfig)
	case c.GridCells < 1 || c.GridCells > 64:
		return fmt.Errorf("%w: grid cells %d out of range [1, 64]", ErrInvalidConfig, c.GridCells)
	}
	return nil
}

// EventsFromArg interprets the desktop positional argument: a value starting
// with 'n' disables the events scene, anything else enables it.
func EventsFromArg(arg string) bool {
	return len(arg) == 0 || arg[0] != 'n'
}

// EventsFromArgs reads the desktop positional arguments. Exactly one is
// expected; flags after it are not parsed, so extra arguments are rejected.
func EventsFromArgs(args []string) (bool, error) {
	switch {
	case len(args) == 0:
		return false, fmt.Errorf("%w: missing <events|noevents> argument", ErrUsage)
	case len(args) > 1:
		return false, fmt.Errorf("%w: unexpected arguments %q (flags go before <events|noevents>)", ErrUsage, args[1:])
	}
	return EventsFromArg(args[0]), nil
}
