package canvasmarkers

import "time"

// repaintStats holds per-repaint metrics. Only populated in debug mode.
type repaintStats struct {
	markers  int
	drawn    int
	loads    int
	duration time.Duration
}

// debugLog logs the stats of the last repaint at debug level.
func (l *CanvasIconLayer) debugLog() {
	if !l.debug {
		return
	}
	Logger().Debug("canvasmarkers: repaint",
		"markers", l.stats.markers,
		"drawn", l.stats.drawn,
		"loads", l.stats.loads,
		"duration", l.stats.duration)
}
