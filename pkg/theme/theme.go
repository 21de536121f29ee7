package theme

import (
	"fmt"
	"path/filepath"
)

// DefaultIconDir is where themes look for icons unless a dir line overrides it.
const DefaultIconDir = "/usr/share/fdpowermon"

// Theme maps battery levels to icons for both directions. It is built with
// the setters in order: SetStepCount first, then SetDir and the step sets.
type Theme struct {
	stepCount   int
	dir         string
	charging    StepSet
	discharging StepSet
}

// New returns an empty theme whose icons resolve against DefaultIconDir.
func New() *Theme {
	return &Theme{dir: DefaultIconDir}
}

func (t *Theme) SetStepCount(n int) {
	t.stepCount = n
}

func (t *Theme) StepCount() int {
	return t.stepCount
}

func (t *Theme) SetDir(path string) {
	t.dir = path
}

func (t *Theme) Dir() string {
	return t.dir
}

// SetCharging assigns the charging steps. It fails with ErrShapeMismatch
// unless len(steps) equals the step count.
func (t *Theme) SetCharging(steps StepSet) error {
	if err := t.checkShape(steps); err != nil {
		return fmt.Errorf("charging: %w", err)
	}
	t.charging = steps
	return nil
}

// SetDischarging assigns the discharging steps. It fails with
// ErrShapeMismatch unless len(steps) equals the step count.
func (t *Theme) SetDischarging(steps StepSet) error {
	if err := t.checkShape(steps); err != nil {
		return fmt.Errorf("discharging: %w", err)
	}
	t.discharging = steps
	return nil
}

func (t *Theme) checkShape(steps StepSet) error {
	if t.stepCount <= 0 {
		return fmt.Errorf("%w: step count is not set", ErrShapeMismatch)
	}
	if len(steps) != t.stepCount {
		return fmt.Errorf("%w: got %d steps, theme declares %d", ErrShapeMismatch, len(steps), t.stepCount)
	}
	return nil
}

// SetEvent attaches cb to the step at index for the given direction token.
// index must be within the step count; anything else panics.
func (t *Theme) SetEvent(index int, cb Callback, direction string) error {
	dir, err := ParseDirection(direction)
	if err != nil {
		return err
	}
	t.Steps(dir)[index].Callback = cb
	return nil
}

// Steps returns the step set used for dir. Everything but Discharging maps
// to the charging steps.
func (t *Theme) Steps(dir Direction) StepSet {
	if dir == Discharging {
		return t.discharging
	}
	return t.charging
}

// IconPath resolves an icon reference against the theme directory.
func (t *Theme) IconPath(icon string) string {
	return filepath.Join(t.dir, icon)
}
