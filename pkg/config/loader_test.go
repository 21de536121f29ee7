package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kak-tus/fdpowermon/pkg/theme"
)

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/user")

	paths, err := DefaultPaths("")
	require.NoError(t, err)
	assert.Equal(t, Paths{
		SystemThemeFile: "/etc/fdpowermon/theme.cfg",
		SystemTweaks:    "/etc/fdpowermon/tweaks",
		UserThemeFile:   "/xdg/fdpowermon/theme.cfg",
		UserTweaks:      "/xdg/fdpowermon/tweaks",
	}, paths)

	t.Setenv("XDG_CONFIG_HOME", "")
	paths, err = DefaultPaths("/opt/etc")
	require.NoError(t, err)
	assert.Equal(t, "/opt/etc/theme.cfg", paths.SystemThemeFile)
	assert.Equal(t, "/home/user/.config/fdpowermon/theme.cfg", paths.UserThemeFile)
}

func TestDefaultPathsMissingHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	_, err := DefaultPaths("")
	assert.ErrorIs(t, err, ErrMissingHomeConfig)
}

func TestLoadWithoutFiles(t *testing.T) {
	dir := t.TempDir()
	reg := theme.NewRegistry()
	l := NewLoader(Paths{
		SystemThemeFile: filepath.Join(dir, "system.cfg"),
		UserThemeFile:   filepath.Join(dir, "user.cfg"),
	}, reg)

	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, theme.BuiltinName, reg.DefaultName())
	assert.Equal(t, DefaultWarnings, l.Warnings())
}

func TestLoadUserOverridesSystem(t *testing.T) {
	dir := t.TempDir()
	system := filepath.Join(dir, "etc", "theme.cfg")
	user := filepath.Join(dir, "home", "theme.cfg")

	writeFile(t, system, "[sys-a]\nsteps = 1\n[sys-b]\nsteps = 1\n", 0644)

	reg := theme.NewRegistry()
	l := NewLoader(Paths{SystemThemeFile: system, UserThemeFile: user}, reg)
	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, "sys-b", reg.DefaultName())

	writeFile(t, user, "[mine]\nsteps = 1\n", 0644)

	reg = theme.NewRegistry()
	l = NewLoader(Paths{SystemThemeFile: system, UserThemeFile: user}, reg)
	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, "mine", reg.DefaultName())
	assert.Equal(t, []string{theme.BuiltinName, "mine", "sys-a", "sys-b"}, reg.Names())
}

func TestLoadPropagatesShapeMismatch(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "theme.cfg")
	writeFile(t, user, "[bad]\ncharging = 100:full.png\nsteps = 1\n", 0644)

	l := NewLoader(Paths{UserThemeFile: user}, theme.NewRegistry())
	err := l.Load(context.Background())
	assert.ErrorIs(t, err, theme.ErrShapeMismatch)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	systemFile := filepath.Join(dir, "etc", "theme.cfg")
	systemTweaks := filepath.Join(dir, "etc", "tweaks")
	userFile := filepath.Join(dir, "home", "theme.cfg")
	userTweaks := filepath.Join(dir, "home", "tweaks")

	writeFile(t, systemFile, "[a]\nsteps = 1\n[b]\nsteps = 1\n", 0644)
	writeFile(t, systemTweaks, "#!/bin/sh\necho 'default a'\necho 'warnings 15 5'\n", 0755)
	writeFile(t, userFile, "[u]\nsteps = 1\n", 0644)
	writeFile(t, userTweaks, "#!/bin/sh\necho 'default b'\necho 'warnings 20'\n", 0755)

	tests := []struct {
		name         string
		paths        Paths
		wantDefault  string
		wantWarnings []float64
	}{
		{
			name:         "system file",
			paths:        Paths{SystemThemeFile: systemFile},
			wantDefault:  "b",
			wantWarnings: DefaultWarnings,
		},
		{
			name:         "system tweaks run after system file",
			paths:        Paths{SystemThemeFile: systemFile, SystemTweaks: systemTweaks},
			wantDefault:  "a",
			wantWarnings: []float64{15, 5},
		},
		{
			name:         "user file overrides system tweaks",
			paths:        Paths{SystemThemeFile: systemFile, SystemTweaks: systemTweaks, UserThemeFile: userFile},
			wantDefault:  "u",
			wantWarnings: []float64{15, 5},
		},
		{
			name: "user tweaks run last",
			paths: Paths{
				SystemThemeFile: systemFile,
				SystemTweaks:    systemTweaks,
				UserThemeFile:   userFile,
				UserTweaks:      userTweaks,
			},
			wantDefault:  "b",
			wantWarnings: []float64{20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := theme.NewRegistry()
			l := NewLoader(tt.paths, reg)

			require.NoError(t, l.Load(context.Background()))
			assert.Equal(t, tt.wantDefault, reg.DefaultName())
			assert.Equal(t, tt.wantWarnings, l.Warnings())
		})
	}
}
