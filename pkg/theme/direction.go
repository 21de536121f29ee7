package theme

import "fmt"

// Direction is the charging state a battery reading was taken in.
type Direction int

const (
	// Unknown covers "Unknown", "Full" and "Not charging" readings.
	Unknown Direction = iota
	// Charging indicates the battery is charging.
	Charging
	// Discharging indicates the battery is discharging.
	Discharging
)

func (d Direction) String() string {
	switch d {
	case Charging:
		return "charging"
	case Discharging:
		return "discharging"
	default:
		return "unknown"
	}
}

// IsCharging reports the charging flag handed to callbacks. known is false
// when the direction is Unknown.
func (d Direction) IsCharging() (charging bool, known bool) {
	switch d {
	case Charging:
		return true, true
	case Discharging:
		return false, true
	default:
		return false, false
	}
}

// ParseDirection parses the direction tokens used by config files and
// tweak scripts. Only "charging" and "discharging" are accepted.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "charging":
		return Charging, nil
	case "discharging":
		return Discharging, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidDirection, token)
}
