// Package monitor runs the poll cycle: read the batteries, pick the icon
// from the default theme, fire step events and raise low battery warnings.
package monitor

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kak-tus/fdpowermon/pkg/evaluator"
	"github.com/kak-tus/fdpowermon/pkg/events"
	"github.com/kak-tus/fdpowermon/pkg/notify"
	"github.com/kak-tus/fdpowermon/pkg/powerinfo"
	"github.com/kak-tus/fdpowermon/pkg/theme"
	"github.com/kak-tus/fdpowermon/pkg/types"
	"github.com/kak-tus/fdpowermon/pkg/warning"
)

var loopInterval = 3 * time.Second

// Display is the tray icon.
type Display interface {
	SetTooltip(text string)
	// SetIcon shows the icon at path.
	SetIcon(path string) error
	// Hide replaces the icon with the fallback and hides it.
	Hide()
}

// Monitor owns the state carried between polls.
type Monitor struct {
	// pollMu serializes polls, mu guards last.
	pollMu    *sync.Mutex
	mu        *sync.Mutex
	registry  *theme.Registry
	source    powerinfo.Source
	display   Display
	notifier  notify.Notifier
	evaluator *evaluator.Evaluator
	warnings  *warning.Controller
	hub       *events.Hub

	last        types.Status
	lastPrinted pollStatus
	lastPrintAt time.Time
}

// Options configure a Monitor. Hub may be nil.
type Options struct {
	Registry *theme.Registry
	Source   powerinfo.Source
	Display  Display
	Notifier notify.Notifier
	Warnings []float64
	Hub      *events.Hub
}

func New(o Options) *Monitor {
	return &Monitor{
		pollMu:    &sync.Mutex{},
		mu:        &sync.Mutex{},
		registry:  o.Registry,
		source:    o.Source,
		display:   o.Display,
		notifier:  o.Notifier,
		evaluator: evaluator.New(),
		warnings:  warning.NewController(o.Warnings),
		hub:       o.Hub,
	}
}

// Run polls immediately and then every loopInterval until ctx is done.
// Polls never overlap.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(loopInterval)
	defer ticker.Stop()

	for {
		if err := m.Poll(ctx); err != nil {
			logrus.Errorf("poll failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Poll runs one full cycle. A source that reports no battery makes the
// poll a no-op. Status stays readable while the source is being read.
func (m *Monitor) Poll(ctx context.Context) error {
	m.pollMu.Lock()
	defer m.pollMu.Unlock()

	batteries, err := m.source.Read(ctx)
	if err != nil {
		return err
	}

	reading, ok := powerinfo.Aggregate(batteries)
	if !ok {
		logrus.Debug("no battery found, skipping display update")
		return nil
	}

	m.display.SetTooltip(reading.Tooltip)

	themeName := m.registry.DefaultName()
	var res evaluator.Result
	if t, ok := m.registry.Get(themeName); ok {
		res = m.evaluator.Evaluate(t, reading.Direction, reading.Level)
	} else {
		logrus.WithField("theme", themeName).Error("default theme is not registered")
	}

	if res.IconPath == "" {
		m.display.Hide()
	} else if err := m.display.SetIcon(res.IconPath); err != nil {
		logrus.WithError(err).WithField("icon", res.IconPath).Warn("failed to set tray icon")
	}

	if res.Callback != nil {
		logrus.WithFields(logrus.Fields{
			"level":     reading.Level,
			"direction": reading.Direction,
		}).Info("firing theme event")
		if err := res.Callback.Fire(reading.Level, reading.Direction); err != nil {
			logrus.Errorf("theme event failed: %v", err)
		}
	}

	// Only an explicit discharging reading counts as running on battery.
	charging := reading.Direction != theme.Discharging
	if threshold, raise := m.warnings.Check(reading.Level, charging); raise {
		m.raiseWarning(threshold, reading.Level)
	}

	now := time.Now()
	m.mu.Lock()
	m.last = types.Status{
		Valid:       true,
		Level:       reading.Level,
		Direction:   reading.Direction.String(),
		Theme:       themeName,
		Icon:        res.IconPath,
		Flashing:    res.Step != nil && res.Step.Flashing(),
		LastWarning: m.warnings.LastWarning(),
		Warnings:    m.warnings.Thresholds(),
		Batteries:   batteries,
		PolledAt:    now,
	}
	m.mu.Unlock()

	m.printStatus(pollStatus{
		level:     reading.Level,
		direction: reading.Direction,
		theme:     themeName,
		icon:      res.IconPath,
	})

	m.hub.Publish(events.Poll, events.PollEvent{
		Level:     reading.Level,
		Direction: reading.Direction.String(),
		Theme:     themeName,
		Icon:      res.IconPath,
		Tooltip:   reading.Tooltip,
		Ts:        now.Unix(),
	})

	return nil
}

func (m *Monitor) raiseWarning(threshold, level float64) {
	logrus.WithFields(logrus.Fields{
		"threshold": threshold,
		"level":     level,
	}).Info("battery level below warning threshold")

	body := fmt.Sprintf("Battery level is %s%%, below the %s%% warning threshold.",
		strconv.FormatFloat(level, 'f', 0, 64),
		strconv.FormatFloat(threshold, 'f', -1, 64),
	)
	if err := m.notifier.Notify("Low battery", body); err != nil {
		logrus.Errorf("failed to show low battery warning: %v", err)
	}

	m.hub.Publish(events.Warning, events.WarningEvent{
		Threshold: threshold,
		Level:     level,
		Ts:        time.Now().Unix(),
	})
}

// Status returns the outcome of the last poll.
func (m *Monitor) Status() types.Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.last
}

// Registry returns the theme registry polls read from.
func (m *Monitor) Registry() *theme.Registry {
	return m.registry
}

type pollStatus struct {
	level     float64
	direction theme.Direction
	theme     string
	icon      string
}

// printStatus logs at debug level when the status changed or a while has
// passed since the last debug line, at trace level otherwise.
func (m *Monitor) printStatus(s pollStatus) {
	fields := logrus.Fields{
		"level":     s.level,
		"direction": s.direction,
		"theme":     s.theme,
		"icon":      s.icon,
	}

	if time.Since(m.lastPrintAt) < time.Minute && s == m.lastPrinted {
		logrus.WithFields(fields).Trace("poll status")
		return
	}

	logrus.WithFields(fields).Debug("poll status")
	m.lastPrinted = s
	m.lastPrintAt = time.Now()
}
