package powerinfo

import (
	"context"

	"github.com/kak-tus/fdpowermon/pkg/theme"
)

// BatteryState represents the charging state of a single battery.
type BatteryState int

const (
	// Unknown is reported by some firmware while on AC power.
	Unknown BatteryState = iota
	// Discharging indicates the battery is discharging.
	Discharging
	// Charging indicates the battery is charging.
	Charging
	// NotCharging indicates the battery is on AC but not charging.
	NotCharging
	// Full indicates the battery is full.
	Full
)

var stateNames = map[BatteryState]string{
	Unknown:     "Unknown",
	Discharging: "Discharging",
	Charging:    "Charging",
	NotCharging: "Not charging",
	Full:        "Full",
}

func (s BatteryState) String() string {
	return stateNames[s]
}

// Direction maps the state to the theme direction.
func (s BatteryState) Direction() theme.Direction {
	switch s {
	case Discharging:
		return theme.Discharging
	case Charging:
		return theme.Charging
	default:
		return theme.Unknown
	}
}

// Battery is one battery as reported by a Source.
// Units:
// - Level: percent
// - DesignCapacity, LastFullCapacity: mAh (acpi) or mWh (native)
type Battery struct {
	Index            int          `json:"index"`
	State            BatteryState `json:"state"`
	Level            float64      `json:"level"`
	Remaining        string       `json:"remaining,omitempty"`
	DesignCapacity   float64      `json:"designCapacity"`
	LastFullCapacity float64      `json:"lastFullCapacity"`
}

// Reading is the aggregate of all batteries for one poll.
type Reading struct {
	Level     float64         `json:"level"`
	Direction theme.Direction `json:"direction"`
	Tooltip   string          `json:"tooltip"`
}

// Source reads the current batteries. An empty slice means no reading.
type Source interface {
	Read(ctx context.Context) ([]Battery, error)
}
