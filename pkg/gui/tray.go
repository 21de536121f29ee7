// Package gui shows the battery icon in the system tray.
package gui

import (
	"encoding/base64"
	"os"
	"sync"

	"github.com/getlantern/systray"
	pkgerrors "github.com/pkg/errors"
)

// blankIcon is a 1x1 transparent PNG shown while the icon is hidden.
var blankIcon, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAAC0lEQVR4nGNgAAIAAAUAAXpeqz8AAAAASUVORK5CYII=",
)

// Tray is the tray icon. Icon files are read once and kept in memory, so
// flashing between two icons does not touch the disk.
type Tray struct {
	mu      sync.Mutex
	icons   map[string][]byte
	current string

	setIcon    func([]byte)
	setTooltip func(string)
	readFile   func(string) ([]byte, error)
}

func NewTray() *Tray {
	return &Tray{
		icons:      make(map[string][]byte),
		setIcon:    systray.SetIcon,
		setTooltip: systray.SetTooltip,
		readFile:   os.ReadFile,
	}
}

func (t *Tray) SetTooltip(text string) {
	t.setTooltip(text)
}

// SetIcon shows the icon at path. Setting the icon already shown is a no-op.
func (t *Tray) SetIcon(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if path == t.current {
		return nil
	}

	b, ok := t.icons[path]
	if !ok {
		var err error
		b, err = t.readFile(path)
		if err != nil {
			return pkgerrors.Wrapf(err, "failed to read icon %s", path)
		}
		t.icons[path] = b
	}

	t.setIcon(b)
	t.current = path
	return nil
}

// Hide replaces the icon with a transparent one.
func (t *Tray) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == "" {
		return
	}
	t.setIcon(blankIcon)
	t.current = ""
}
