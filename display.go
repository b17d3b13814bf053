package logo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Display is the platform surface the Driver renders through. The core only
// needs its size, a present hook and an exit poll.
type Display interface {
	// Size returns the surface size in pixels.
	Size() (width, height int)
	// Present is called once per frame after all draws were submitted.
	Present()
	// ExitRequested reports whether an exit event arrived since the last call.
	ExitRequested() bool
}

// ebitenDisplay is the Display of an Ebitengine window. Ebitengine swaps
// buffers when Draw returns, so Present has nothing left to do.
type ebitenDisplay struct {
	width, height int
	keys          []ebiten.Key
}

// newEbitenDisplay returns a display of a fixed size, or of the monitor's
// current mode when width and height are zero.
func newEbitenDisplay(width, height int) *ebitenDisplay {
	return &ebitenDisplay{width: width, height: height}
}

func (d *ebitenDisplay) Size() (int, int) {
	if d.width == 0 || d.height == 0 {
		// Queried lazily: the monitor is only known once the loop runs.
		d.width, d.height = ebiten.Monitor().Size()
	}
	return d.width, d.height
}

func (d *ebitenDisplay) Present() {}

func (d *ebitenDisplay) ExitRequested() bool {
	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	return len(d.keys) > 0
}
