package types

import (
	"time"

	"github.com/kak-tus/fdpowermon/pkg/powerinfo"
)

// Status is the outcome of the most recent poll. It is shared between the
// monitor's status API and its clients.
type Status struct {
	// Valid is false until a poll found at least one battery.
	Valid       bool                `json:"valid"`
	Level       float64             `json:"level"`
	Direction   string              `json:"direction"`
	Theme       string              `json:"theme"`
	Icon        string              `json:"icon,omitempty"`
	Flashing    bool                `json:"flashing"`
	LastWarning float64             `json:"lastWarning"`
	Warnings    []float64           `json:"warnings"`
	Batteries   []powerinfo.Battery `json:"batteries"`
	PolledAt    time.Time           `json:"polledAt"`
}
