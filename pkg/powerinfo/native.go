package powerinfo

import (
	"context"

	"github.com/distatus/battery"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NativeSource reads batteries through the operating system interfaces
// instead of the acpi command. Capacities are in mWh.
type NativeSource struct{}

func NewNativeSource() *NativeSource {
	return &NativeSource{}
}

func (s *NativeSource) Read(_ context.Context) ([]Battery, error) {
	batteries, err := battery.GetAll()
	if err != nil {
		if len(batteries) == 0 {
			return nil, pkgerrors.Wrapf(err, "failed to read batteries")
		}
		logrus.WithError(err).Debug("some battery fields could not be read")
	}

	ret := make([]Battery, 0, len(batteries))
	for i, bat := range batteries {
		if bat == nil || bat.Full <= 0 {
			continue
		}
		ret = append(ret, Battery{
			Index:            i,
			State:            nativeState(bat),
			Level:            bat.Current / bat.Full * 100,
			DesignCapacity:   bat.Design,
			LastFullCapacity: bat.Full,
		})
	}
	return ret, nil
}

func nativeState(bat *battery.Battery) BatteryState {
	switch bat.State {
	case battery.Charging:
		return Charging
	case battery.Discharging:
		return Discharging
	case battery.Full:
		return Full
	default:
		return Unknown
	}
}
