package theme

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Callback is user code attached to a step. It is fired by the poll cycle
// with the current level and direction.
type Callback interface {
	Fire(level float64, dir Direction) error
}

// CallbackFunc adapts a plain function to Callback.
type CallbackFunc func(level float64, dir Direction) error

func (f CallbackFunc) Fire(level float64, dir Direction) error {
	return f(level, dir)
}

// Step maps the level range (Min, Max] to an icon.
type Step struct {
	Min     float64
	Max     float64
	Icon    string
	AltIcon string
	// Callback is nil unless an event was attached with SetEvent.
	Callback Callback
}

// Flashing reports whether the step alternates between Icon and AltIcon.
func (s *Step) Flashing() bool {
	return s.AltIcon != ""
}

// Contains uses an open lower bound, so a level of exactly 0 never matches.
func (s *Step) Contains(level float64) bool {
	return s.Min < level && level <= s.Max
}

// StepSet is the ordered list of steps for one direction.
type StepSet []*Step

// ParseSteps parses a step definition of the form
//
//	max1:icon1[:alt1], max2:icon2[:alt2], ...
//
// The definition is split into at most stepCount entries, so the last icon
// name may contain commas. Entries without an icon or with a non-numeric
// bound are logged and dropped; the resulting length is checked later by
// SetCharging and SetDischarging. A stepCount below 1 means no cap.
func ParseSteps(definition string, stepCount int) StepSet {
	var (
		steps StepSet
		lower float64
	)

	if stepCount <= 0 {
		stepCount = -1
	}

	for _, entry := range strings.SplitN(definition, ",", stepCount) {
		entry = strings.TrimSpace(entry)

		fields := strings.SplitN(entry, ":", 3)
		if len(fields) < 2 {
			logrus.WithField("entry", entry).Warn("unparseable step entry: missing colon")
			continue
		}

		upper, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"entry": entry,
				"error": err,
			}).Warn("unparseable step entry: invalid upper bound")
			continue
		}

		step := &Step{
			Min:  lower,
			Max:  upper,
			Icon: strings.TrimSpace(fields[1]),
		}
		if len(fields) == 3 {
			step.AltIcon = strings.TrimSpace(fields[2])
		}

		steps = append(steps, step)
		lower = upper
	}

	return steps
}

// Match returns the index of the first step containing level, or -1.
func (s StepSet) Match(level float64) int {
	for i, step := range s {
		if step.Contains(level) {
			return i
		}
	}
	return -1
}
