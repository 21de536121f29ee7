package theme

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		stepCount  int
		want       StepSet
	}{
		{
			name:       "flashing first step",
			definition: "2:missing.png:low.png, 10:low.png, 100:full.png",
			stepCount:  3,
			want: StepSet{
				{Min: 0, Max: 2, Icon: "missing.png", AltIcon: "low.png"},
				{Min: 2, Max: 10, Icon: "low.png"},
				{Min: 10, Max: 100, Icon: "full.png"},
			},
		},
		{
			name:       "single step",
			definition: "100:full.png",
			stepCount:  1,
			want: StepSet{
				{Min: 0, Max: 100, Icon: "full.png"},
			},
		},
		{
			name:       "fractional bounds",
			definition: "2.5:a.png,50.25:b.png",
			stepCount:  2,
			want: StepSet{
				{Min: 0, Max: 2.5, Icon: "a.png"},
				{Min: 2.5, Max: 50.25, Icon: "b.png"},
			},
		},
		{
			name:       "comma kept in last icon",
			definition: "50:half.png, 100:full,charged.png",
			stepCount:  2,
			want: StepSet{
				{Min: 0, Max: 50, Icon: "half.png"},
				{Min: 50, Max: 100, Icon: "full,charged.png"},
			},
		},
		{
			name:       "entry without colon is dropped",
			definition: "10:low.png, 50, 100:full.png",
			stepCount:  3,
			want: StepSet{
				{Min: 0, Max: 10, Icon: "low.png"},
				{Min: 10, Max: 100, Icon: "full.png"},
			},
		},
		{
			name:       "non numeric bound is dropped",
			definition: "ten:low.png, 100:full.png",
			stepCount:  2,
			want: StepSet{
				{Min: 0, Max: 100, Icon: "full.png"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSteps(tt.definition, tt.stepCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStepsContiguousRanges(t *testing.T) {
	steps := ParseSteps("1:a, 3:b, 7:c, 15:d, 31:e, 63:f, 100:g", 7)
	require.Len(t, steps, 7)

	bounds := []float64{1, 3, 7, 15, 31, 63, 100}
	for i, step := range steps {
		if i == 0 {
			assert.Equal(t, 0.0, step.Min)
		} else {
			assert.Equal(t, steps[i-1].Max, step.Min)
		}
		assert.Equal(t, bounds[i], step.Max)
	}
}

func TestParseStepsWarnsOnMissingColon(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	steps := ParseSteps("10:low.png, broken", 2)

	assert.Len(t, steps, 1)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "broken", hook.LastEntry().Data["entry"])
}

func TestStepSetMatch(t *testing.T) {
	steps := ParseSteps("2:missing.png:low.png, 10:low.png, 100:full.png", 3)

	tests := []struct {
		level float64
		want  int
	}{
		{level: 0, want: -1},
		{level: 0.1, want: 0},
		{level: 2, want: 0},
		{level: 2.5, want: 1},
		{level: 10, want: 1},
		{level: 75, want: 2},
		{level: 100, want: 2},
		{level: 100.5, want: -1},
	}
	for _, tt := range tests {
		if got := steps.Match(tt.level); got != tt.want {
			t.Errorf("Match(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("charging")
	require.NoError(t, err)
	assert.Equal(t, Charging, dir)

	dir, err = ParseDirection("discharging")
	require.NoError(t, err)
	assert.Equal(t, Discharging, dir)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}
