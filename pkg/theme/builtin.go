package theme

// BuiltinName is the name the built-in theme is registered under.
const BuiltinName = "default"

const (
	builtinSteps       = 10
	builtinDischarging = "5:battery-005.png:battery-missing.png, 10:battery-010.png, 20:battery-020.png, " +
		"30:battery-030.png, 40:battery-040.png, 50:battery-050.png, 60:battery-060.png, " +
		"70:battery-070.png, 80:battery-080.png, 100:battery-100.png"
	builtinCharging = "5:battery-charging-005.png, 10:battery-charging-010.png, 20:battery-charging-020.png, " +
		"30:battery-charging-030.png, 40:battery-charging-040.png, 50:battery-charging-050.png, " +
		"60:battery-charging-060.png, 70:battery-charging-070.png, 80:battery-charging-080.png, " +
		"100:battery-charging-100.png"
)

// Builtin returns the theme used when no configuration file defines one.
func Builtin() *Theme {
	t := New()
	t.SetStepCount(builtinSteps)
	// The definitions are constants with the right shape.
	if err := t.SetDischarging(ParseSteps(builtinDischarging, builtinSteps)); err != nil {
		panic(err)
	}
	if err := t.SetCharging(ParseSteps(builtinCharging, builtinSteps)); err != nil {
		panic(err)
	}
	return t
}
