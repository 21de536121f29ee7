package types

import (
	"github.com/kak-tus/fdpowermon/pkg/theme"
)

// StepInfo describes one step of a theme.
type StepInfo struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Icon    string  `json:"icon"`
	AltIcon string  `json:"altIcon,omitempty"`
	Event   bool    `json:"event"`
}

// ThemeInfo describes a registered theme.
type ThemeInfo struct {
	Name        string     `json:"name"`
	Default     bool       `json:"default"`
	StepCount   int        `json:"stepCount"`
	Dir         string     `json:"dir"`
	Charging    []StepInfo `json:"charging"`
	Discharging []StepInfo `json:"discharging"`
}

// DescribeThemes lists every theme in reg in name order.
func DescribeThemes(reg *theme.Registry) []ThemeInfo {
	names := reg.Names()
	defaultName := reg.DefaultName()

	ret := make([]ThemeInfo, 0, len(names))
	for _, name := range names {
		t, ok := reg.Get(name)
		if !ok {
			continue
		}
		ret = append(ret, ThemeInfo{
			Name:        name,
			Default:     name == defaultName,
			StepCount:   t.StepCount(),
			Dir:         t.Dir(),
			Charging:    describeSteps(t.Steps(theme.Charging)),
			Discharging: describeSteps(t.Steps(theme.Discharging)),
		})
	}
	return ret
}

func describeSteps(steps theme.StepSet) []StepInfo {
	ret := make([]StepInfo, 0, len(steps))
	for _, s := range steps {
		ret = append(ret, StepInfo{
			Min:     s.Min,
			Max:     s.Max,
			Icon:    s.Icon,
			AltIcon: s.AltIcon,
			Event:   s.Callback != nil,
		})
	}
	return ret
}
