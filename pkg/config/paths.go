package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// DefaultSystemDir holds the system-wide theme file and tweak script.
	DefaultSystemDir = "/etc/fdpowermon"

	themeFileName = "theme.cfg"
	tweakFileName = "tweaks"
)

// ErrMissingHomeConfig is returned when neither XDG_CONFIG_HOME nor HOME is
// set, so the per-user configuration cannot be located.
var ErrMissingHomeConfig = errors.New("cannot locate user configuration: neither XDG_CONFIG_HOME nor HOME is set")

// Paths lists the configuration sources in the order they are applied.
type Paths struct {
	SystemThemeFile string
	SystemTweaks    string
	UserThemeFile   string
	UserTweaks      string
}

// DefaultPaths resolves the configuration sources. systemDir defaults to
// DefaultSystemDir when empty.
func DefaultPaths(systemDir string) (Paths, error) {
	if systemDir == "" {
		systemDir = DefaultSystemDir
	}

	userDir, err := UserDir()
	if err != nil {
		return Paths{}, err
	}

	return Paths{
		SystemThemeFile: filepath.Join(systemDir, themeFileName),
		SystemTweaks:    filepath.Join(systemDir, tweakFileName),
		UserThemeFile:   filepath.Join(userDir, themeFileName),
		UserTweaks:      filepath.Join(userDir, tweakFileName),
	}, nil
}

// UserDir returns $XDG_CONFIG_HOME/fdpowermon, falling back to
// $HOME/.config/fdpowermon.
func UserDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "fdpowermon"), nil
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "fdpowermon"), nil
	}
	return "", ErrMissingHomeConfig
}
