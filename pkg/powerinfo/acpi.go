package powerinfo

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Line is one parsed line of acpi output: StatusLine, CapacityLine or
// OtherLine.
type Line interface {
	isLine()
}

// StatusLine is "Battery N: <state>, L%[, remaining]".
type StatusLine struct {
	Index     int
	State     BatteryState
	Level     float64
	Remaining string
}

// CapacityLine is "Battery N: design capacity D mAh, last full capacity F mAh".
type CapacityLine struct {
	Index    int
	Design   float64
	LastFull float64
}

// OtherLine is anything else, such as adapter or thermal lines.
type OtherLine struct {
	Text string
}

func (StatusLine) isLine()   {}
func (CapacityLine) isLine() {}
func (OtherLine) isLine()    {}

var (
	statusRegex   = regexp.MustCompile(`^Battery (\d+): (Charging|Discharging|Not charging|Unknown|Full), ([0-9.]+)%(?:, (.+))?$`)
	capacityRegex = regexp.MustCompile(`^Battery (\d+): design capacity ([0-9.]+) mAh, last full capacity ([0-9.]+) mAh`)
)

// ParseLine classifies a single line of acpi output.
func ParseLine(text string) Line {
	trimmed := strings.TrimSpace(text)

	if matches := statusRegex.FindStringSubmatch(trimmed); matches != nil {
		index, errIndex := strconv.Atoi(matches[1])
		level, errLevel := strconv.ParseFloat(matches[3], 64)
		if errIndex == nil && errLevel == nil {
			return StatusLine{
				Index:     index,
				State:     parseState(matches[2]),
				Level:     level,
				Remaining: matches[4],
			}
		}
	}

	if matches := capacityRegex.FindStringSubmatch(trimmed); matches != nil {
		index, errIndex := strconv.Atoi(matches[1])
		design, errDesign := strconv.ParseFloat(matches[2], 64)
		lastFull, errFull := strconv.ParseFloat(matches[3], 64)
		if errIndex == nil && errDesign == nil && errFull == nil {
			return CapacityLine{
				Index:    index,
				Design:   design,
				LastFull: lastFull,
			}
		}
	}

	return OtherLine{Text: trimmed}
}

func parseState(s string) BatteryState {
	for state, name := range stateNames {
		if name == s {
			return state
		}
	}
	return Unknown
}

// ParseACPI collects the batteries found in the output of acpi -b -i, in the
// order their status lines appear. Batteries without a capacity line keep a
// zero capacity.
func ParseACPI(output string) []Battery {
	var (
		batteries []Battery
		byIndex   = map[int]int{}
		hasStatus = map[int]bool{}
	)

	get := func(index int) *Battery {
		i, ok := byIndex[index]
		if !ok {
			batteries = append(batteries, Battery{Index: index})
			i = len(batteries) - 1
			byIndex[index] = i
		}
		return &batteries[i]
	}

	for _, text := range strings.Split(output, "\n") {
		switch l := ParseLine(text).(type) {
		case StatusLine:
			b := get(l.Index)
			hasStatus[l.Index] = true
			b.State = l.State
			b.Level = l.Level
			b.Remaining = l.Remaining
		case CapacityLine:
			b := get(l.Index)
			b.DesignCapacity = l.Design
			b.LastFullCapacity = l.LastFull
		case OtherLine:
			if l.Text != "" {
				logrus.WithField("text", l.Text).Trace("ignoring acpi line")
			}
		}
	}

	// A capacity line alone does not describe a battery we can display.
	valid := batteries[:0]
	for _, b := range batteries {
		if hasStatus[b.Index] {
			valid = append(valid, b)
		}
	}
	return valid
}

// ACPISource runs the acpi command. The command runs without a timeout, a
// hanging acpi stalls the poll cycle.
type ACPISource struct {
	Command string
	Args    []string
}

func NewACPISource() *ACPISource {
	return &ACPISource{
		Command: "acpi",
		Args:    []string{"-b", "-i"},
	}
}

func (s *ACPISource) Read(ctx context.Context) ([]Battery, error) {
	stderr := &bytes.Buffer{}
	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Stderr = stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to run %s: %s", s.Command, stderr.String())
	}
	return ParseACPI(string(out)), nil
}
