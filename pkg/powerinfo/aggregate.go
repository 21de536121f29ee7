package powerinfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kak-tus/fdpowermon/pkg/theme"
)

// Aggregate combines batteries into a single reading. The level is the
// average weighted by last full capacity, or the plain average when no
// battery reports a capacity. The direction is discharging if any battery
// discharges, charging if any charges, unknown otherwise. ok is false when
// there are no batteries.
func Aggregate(batteries []Battery) (r Reading, ok bool) {
	if len(batteries) == 0 {
		return Reading{}, false
	}

	var (
		weighted, weights, sum float64
		charging, discharging  bool
		lines                  = make([]string, 0, len(batteries))
	)

	for _, b := range batteries {
		weighted += b.Level * b.LastFullCapacity
		weights += b.LastFullCapacity
		sum += b.Level

		switch b.State.Direction() {
		case theme.Discharging:
			discharging = true
		case theme.Charging:
			charging = true
		}

		lines = append(lines, b.Describe())
	}

	r.Level = sum / float64(len(batteries))
	if weights > 0 {
		r.Level = weighted / weights
	}

	switch {
	case discharging:
		r.Direction = theme.Discharging
	case charging:
		r.Direction = theme.Charging
	default:
		r.Direction = theme.Unknown
	}

	r.Tooltip = strings.Join(lines, "\n")

	return r, true
}

// Describe formats the battery like the acpi status line.
func (b Battery) Describe() string {
	s := fmt.Sprintf("Battery %d: %s, %s%%", b.Index, b.State, strconv.FormatFloat(b.Level, 'f', -1, 64))
	if b.Remaining != "" {
		s += ", " + b.Remaining
	}
	return s
}
