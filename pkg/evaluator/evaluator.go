// Package evaluator picks the icon and callback for a battery reading.
package evaluator

import (
	"github.com/kak-tus/fdpowermon/pkg/theme"
)

// Result is what a single evaluation selected.
type Result struct {
	// IconPath is empty when no step matched and the tray icon should be hidden.
	IconPath string
	// ShowAlt is true when a flashing step is in its alternate phase.
	ShowAlt bool
	// Callback is set when the matched step's callback is due.
	Callback theme.Callback
	// Step is the matched step, nil when nothing matched.
	Step *theme.Step
}

// Evaluator keeps the state carried between polls. It is not safe for
// concurrent use; the poll cycle serializes calls.
type Evaluator struct {
	lastEventSet       bool
	lastEventDirection theme.Direction
	lastEventLevel     float64
	flashPhase         bool
}

func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate selects the step of t containing level for dir. The first step
// with Min < level <= Max wins, so level 0 never matches.
//
// A flashing step shows its primary icon and its alternate icon on
// alternating calls. A callback is due on the first firing ever, and
// afterwards only when both the direction and the step's lower bound differ
// from the last firing.
func (e *Evaluator) Evaluate(t *theme.Theme, dir theme.Direction, level float64) Result {
	steps := t.Steps(dir)
	i := steps.Match(level)
	if i < 0 {
		return Result{}
	}
	step := steps[i]

	res := Result{
		IconPath: t.IconPath(step.Icon),
		Step:     step,
	}

	if step.Flashing() {
		if e.flashPhase {
			res.IconPath = t.IconPath(step.AltIcon)
			res.ShowAlt = true
		}
		e.flashPhase = !e.flashPhase
	}

	if step.Callback != nil && e.due(dir, step.Min) {
		res.Callback = step.Callback
		e.lastEventSet = true
		e.lastEventDirection = dir
		e.lastEventLevel = step.Min
	}

	return res
}

func (e *Evaluator) due(dir theme.Direction, lower float64) bool {
	if !e.lastEventSet {
		return true
	}
	return e.lastEventDirection != dir && e.lastEventLevel != lower
}
