package events

import "encoding/json"

// Event name constants
const (
	Poll    = "poll"
	Warning = "warning"
)

// Event is a published event with its JSON payload.
type Event struct {
	Name string
	Data json.RawMessage
}

// PollEvent is the payload of a poll event.
type PollEvent struct {
	Level     float64 `json:"level"`
	Direction string  `json:"direction"`
	Theme     string  `json:"theme"`
	Icon      string  `json:"icon,omitempty"`
	Tooltip   string  `json:"tooltip"`
	Ts        int64   `json:"ts"`
}

// WarningEvent is the payload of a warning event.
type WarningEvent struct {
	Threshold float64 `json:"threshold"`
	Level     float64 `json:"level"`
	Ts        int64   `json:"ts"`
}

// DecodeAs decodes the event payload into T. An empty payload yields the
// zero value of T.
func DecodeAs[T any](e Event) (T, error) {
	var zero T
	if len(e.Data) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return zero, err
	}
	return v, nil
}
