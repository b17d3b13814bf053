package logo

import "time"

// debugEvery is the number of frames between two statistics records.
const debugEvery = 60

// frameStats holds per-frame timing. Only populated in debug mode.
type frameStats struct {
	buildTime    time.Duration
	submitTime   time.Duration
	commandCount int
}

// debugLog records the statistics of the current frame every debugEvery
// frames.
func (d *Driver) debugLog(stats frameStats) {
	if !d.cfg.Debug || d.frames%debugEvery != 0 {
		return
	}
	Logger().Debug("frame",
		"index", d.frames,
		"time", d.frame.Time,
		"scene", d.frame.Scene.Name(),
		"backend", d.backend.Name(),
		"build", stats.buildTime,
		"submit", stats.submitTime,
		"total", stats.buildTime+stats.submitTime,
		"commands", stats.commandCount)
}
