package config

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kak-tus/fdpowermon/pkg/theme"
)

// DefaultWarnings are the warning thresholds used unless a tweak script
// sets its own.
var DefaultWarnings = []float64{10, 5}

// Loader applies the configuration sources to a registry.
type Loader struct {
	paths    Paths
	registry *theme.Registry
	warnings []float64
}

func NewLoader(paths Paths, reg *theme.Registry) *Loader {
	return &Loader{
		paths:    paths,
		registry: reg,
		warnings: append([]float64(nil), DefaultWarnings...),
	}
}

// Load registers the built-in theme, then applies in order: the system
// theme file, the system tweak script, the user theme file and the user
// tweak script. The last theme of each parsed file becomes the default.
// Missing files are skipped.
func (l *Loader) Load(ctx context.Context) error {
	l.registry.Register(theme.Builtin(), theme.BuiltinName)
	l.registry.MakeDefault(theme.BuiltinName)

	if err := l.loadThemeFile(l.paths.SystemThemeFile); err != nil {
		return err
	}
	if err := RunTweaks(ctx, l.paths.SystemTweaks, l); err != nil {
		return err
	}
	if err := l.loadThemeFile(l.paths.UserThemeFile); err != nil {
		return err
	}
	if err := RunTweaks(ctx, l.paths.UserTweaks, l); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"themes":   l.registry.Names(),
		"default":  l.registry.DefaultName(),
		"warnings": l.warnings,
	}).Info("configuration loaded")

	return nil
}

func (l *Loader) loadThemeFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logrus.WithField("file", path).Debug("theme file does not exist, skipping")
		return nil
	}

	last, err := ParseFile(path, l.registry)
	if err != nil {
		return err
	}
	if last != "" {
		l.registry.MakeDefault(last)
	}

	logrus.WithFields(logrus.Fields{
		"file":    path,
		"default": last,
	}).Debug("theme file parsed")

	return nil
}

// Registry returns the registry the loader populates.
func (l *Loader) Registry() *theme.Registry {
	return l.registry
}

// Warnings returns the configured warning thresholds in configured order.
func (l *Loader) Warnings() []float64 {
	return l.warnings
}

// SetWarnings replaces the warning thresholds.
func (l *Loader) SetWarnings(thresholds []float64) {
	l.warnings = thresholds
}
