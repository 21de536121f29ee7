// Package warning decides when a low battery warning is raised.
package warning

// FullLevel is the level the last warning resets to while charging.
const FullLevel = 100

// Check applies one poll to the warning state. While charging the last
// warning level resets to FullLevel. Otherwise thresholds are walked in the
// configured order, skipping those at or above lastWarning; the first one
// with level <= threshold is raised and level becomes the new last warning.
// At most one threshold is raised per call.
func Check(level float64, charging bool, thresholds []float64, lastWarning float64) (newLastWarning float64, raised float64, ok bool) {
	if charging {
		return FullLevel, 0, false
	}

	for _, threshold := range thresholds {
		if threshold >= lastWarning {
			continue
		}
		if level <= threshold {
			return level, threshold, true
		}
	}

	return lastWarning, 0, false
}

// Controller holds the ratcheting last warning level between polls.
type Controller struct {
	thresholds  []float64
	lastWarning float64
}

func NewController(thresholds []float64) *Controller {
	return &Controller{
		thresholds:  thresholds,
		lastWarning: FullLevel,
	}
}

// Check returns the threshold to warn about, if any, and updates the state.
func (c *Controller) Check(level float64, charging bool) (threshold float64, raise bool) {
	c.lastWarning, threshold, raise = Check(level, charging, c.thresholds, c.lastWarning)
	return threshold, raise
}

// LastWarning returns the level of the last warning, FullLevel if none.
func (c *Controller) LastWarning() float64 {
	return c.lastWarning
}

func (c *Controller) Thresholds() []float64 {
	return c.thresholds
}
