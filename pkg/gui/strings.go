package gui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kak-tus/fdpowermon/pkg/events"
)

func statusTitle(p events.PollEvent) string {
	return fmt.Sprintf("Battery: %s%% (%s)", strconv.FormatFloat(p.Level, 'f', 0, 64), p.Direction)
}

func warningTitle(w events.WarningEvent) string {
	return fmt.Sprintf("Last warning: %s%% at %s",
		strconv.FormatFloat(w.Threshold, 'f', -1, 64),
		time.Unix(w.Ts, 0).Format(time.Kitchen),
	)
}
