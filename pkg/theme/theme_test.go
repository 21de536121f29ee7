package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStepSetsShapeMismatch(t *testing.T) {
	th := New()
	th.SetStepCount(3)

	err := th.SetCharging(ParseSteps("50:a.png, 100:b.png", 3))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	err = th.SetDischarging(ParseSteps("10:a.png, 50:b.png, 90:c.png, 100:d.png", 4))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	require.NoError(t, th.SetCharging(ParseSteps("10:a.png, 50:b.png, 100:c.png", 3)))
	require.NoError(t, th.SetDischarging(ParseSteps("10:a.png, 50:b.png, 100:c.png", 3)))
}

func TestSetStepSetsBeforeStepCount(t *testing.T) {
	th := New()
	err := th.SetCharging(ParseSteps("100:full.png", 1))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestStepsByDirection(t *testing.T) {
	th := New()
	th.SetStepCount(1)
	require.NoError(t, th.SetCharging(ParseSteps("100:charging.png", 1)))
	require.NoError(t, th.SetDischarging(ParseSteps("100:discharging.png", 1)))

	assert.Equal(t, "charging.png", th.Steps(Charging)[0].Icon)
	assert.Equal(t, "charging.png", th.Steps(Unknown)[0].Icon)
	assert.Equal(t, "discharging.png", th.Steps(Discharging)[0].Icon)
}

func TestSetEvent(t *testing.T) {
	th := New()
	th.SetStepCount(2)
	require.NoError(t, th.SetCharging(ParseSteps("50:a.png, 100:b.png", 2)))
	require.NoError(t, th.SetDischarging(ParseSteps("50:a.png, 100:b.png", 2)))

	var fired []float64
	cb := CallbackFunc(func(level float64, _ Direction) error {
		fired = append(fired, level)
		return nil
	})

	require.NoError(t, th.SetEvent(0, cb, "discharging"))
	assert.NotNil(t, th.Steps(Discharging)[0].Callback)
	assert.Nil(t, th.Steps(Charging)[0].Callback)

	require.NoError(t, th.Steps(Discharging)[0].Callback.Fire(12, Discharging))
	assert.Equal(t, []float64{12}, fired)

	err := th.SetEvent(0, cb, "full")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestIconPath(t *testing.T) {
	th := New()
	assert.Equal(t, "/usr/share/fdpowermon/full.png", th.IconPath("full.png"))

	th.SetDir("/home/user/icons")
	assert.Equal(t, "/home/user/icons/full.png", th.IconPath("full.png"))
}

func TestBuiltin(t *testing.T) {
	th := Builtin()
	assert.Equal(t, 10, th.StepCount())
	assert.True(t, th.Steps(Discharging)[0].Flashing())
	assert.Equal(t, 100.0, th.Steps(Charging)[9].Max)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Default()
	assert.False(t, ok)

	first := New()
	second := New()
	r.Register(first, "mine")
	r.MakeDefault("mine")

	got, ok := r.Default()
	require.True(t, ok)
	assert.Same(t, first, got)

	r.Register(second, "mine")
	got, ok = r.Get("mine")
	require.True(t, ok)
	assert.Same(t, second, got)

	r.MakeDefault("later")
	assert.Equal(t, "later", r.DefaultName())
	_, ok = r.Default()
	assert.False(t, ok)

	r.Register(New(), "another")
	assert.Equal(t, []string{"another", "mine"}, r.Names())
}
