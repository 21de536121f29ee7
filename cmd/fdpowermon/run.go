package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/kak-tus/fdpowermon/pkg/config"
	"github.com/kak-tus/fdpowermon/pkg/events"
	"github.com/kak-tus/fdpowermon/pkg/gui"
	"github.com/kak-tus/fdpowermon/pkg/monitor"
	"github.com/kak-tus/fdpowermon/pkg/notify"
	"github.com/kak-tus/fdpowermon/pkg/powerinfo"
	"github.com/kak-tus/fdpowermon/pkg/theme"
	"github.com/kak-tus/fdpowermon/pkg/version"
)

const (
	sourceACPI   = "acpi"
	sourceNative = "native"
)

func newSource(name string) (powerinfo.Source, error) {
	switch name {
	case sourceACPI:
		return powerinfo.NewACPISource(), nil
	case sourceNative:
		return powerinfo.NewNativeSource(), nil
	default:
		return nil, fmt.Errorf("unknown battery source %q, want %s or %s", name, sourceACPI, sourceNative)
	}
}

// loadConfig builds the registry from the built-in theme, the theme files
// and the tweak scripts.
func loadConfig(ctx context.Context) (*config.Loader, error) {
	paths, err := config.DefaultPaths(systemDir)
	if err != nil {
		return nil, err
	}

	l := config.NewLoader(paths, theme.NewRegistry())
	if err := l.Load(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

func run(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	logrus.WithFields(logrus.Fields{
		"version": version.Version,
		"commit":  version.GitCommit,
	}).Info("fdpowermon starting")

	source, err := newSource(sourceName)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	l, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	hub := events.NewHub()
	tray := gui.NewTray()
	m := monitor.New(monitor.Options{
		Registry: l.Registry(),
		Source:   source,
		Display:  tray,
		Notifier: notify.Select("fdpowermon"),
		Warnings: l.Warnings(),
		Hub:      hub,
	})

	go func() {
		if err := m.Serve(ctx, unixSocketPath); err != nil {
			logrus.Errorf("status server failed: %v", err)
		}
	}()

	// Blocks until Quit is clicked or a signal arrives.
	gui.Run(ctx, cancel, l.Registry(), hub, func() {
		go m.Run(ctx)
	})

	logrus.Info("fdpowermon stopped")
	return nil
}
