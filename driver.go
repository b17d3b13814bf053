package logo

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Driver is the frame loop. It implements ebiten.Game: Update polls for exit
// and advances the capture script, Draw renders and paces one frame.
type Driver struct {
	cfg     Config
	display Display
	clock   Clock
	builder *FrameBuilder
	backend Backend
	sleep   func(time.Duration)

	frame  Frame
	frames uint64
	exit   bool

	script          *Script
	screenshotQueue []string
}

// NewDriver wires a driver. Nothing is drawn until the first Draw.
func NewDriver(cfg Config, display Display, clock Clock, builder *FrameBuilder, backend Backend) *Driver {
	return &Driver{
		cfg:     cfg,
		display: display,
		clock:   clock,
		builder: builder,
		backend: backend,
		sleep:   time.Sleep,
	}
}

// SetScript attaches a capture script. Its steps run from Update.
func (d *Driver) SetScript(s *Script) {
	d.script = s
}

// SetClock replaces the time source.
func (d *Driver) SetClock(c Clock) {
	d.clock = c
}

// Frames returns the number of frames drawn so far.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Frame returns the most recently built frame.
func (d *Driver) Frame() *Frame {
	return &d.frame
}

// RequestExit ends the loop at the next Update.
func (d *Driver) RequestExit() {
	d.exit = true
}

// Update implements ebiten.Game.
func (d *Driver) Update() error {
	if d.script != nil && !d.script.Done() {
		d.script.step(d)
		if d.script.Done() {
			Logger().Info("script finished", "frames", d.frames, "exit", d.exit)
		}
	}
	if d.cfg.ExitOnKey && d.display.ExitRequested() {
		Logger().Info("key pressed, exiting", "frames", d.frames)
		d.exit = true
	}
	if d.exit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (d *Driver) Draw(screen *ebiten.Image) {
	d.RenderFrame(screen)
	d.flushScreenshots(screen)
	d.display.Present()
	d.clock.Advance()
	d.frames++
	if d.cfg.FrameSleep > 0 {
		d.sleep(d.cfg.FrameSleep)
	}
}

// Layout implements ebiten.Game. The logical screen always matches the
// display so the projection aspect is the display's.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.display.Size()
}

// RenderFrame reads the clock once, builds the frame and submits it to target.
func (d *Driver) RenderFrame(target *ebiten.Image) {
	var stats frameStats
	var t0 time.Time
	if d.cfg.Debug {
		t0 = time.Now()
	}

	w, h := d.display.Size()
	d.builder.Build(&d.frame, d.frames, d.clock.Now(), w, h)

	if d.cfg.Debug {
		stats.buildTime = time.Since(t0)
		stats.commandCount = len(d.frame.Commands)
		t0 = time.Now()
	}

	target.Fill(ColorBlack.toRGBA())
	d.backend.Submit(target, &d.frame)
	if d.cfg.ShowFPS {
		drawFPS(target)
	}

	if d.cfg.Debug {
		stats.submitTime = time.Since(t0)
		d.debugLog(stats)
	}
}
