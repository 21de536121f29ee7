package gui

import (
	"context"
	"fmt"

	"github.com/getlantern/systray"
	"github.com/sirupsen/logrus"

	"github.com/kak-tus/fdpowermon/pkg/events"
	"github.com/kak-tus/fdpowermon/pkg/theme"
)

type menuController struct {
	registry *theme.Registry
	status   *systray.MenuItem
	warning  *systray.MenuItem
	themes   map[string]*systray.MenuItem
}

func addMenu(registry *theme.Registry) *menuController {
	c := &menuController{
		registry: registry,
		themes:   make(map[string]*systray.MenuItem),
	}

	c.status = systray.AddMenuItem("Battery: -", "Current battery status")
	c.status.Disable()
	c.warning = systray.AddMenuItem("Last warning: none", "Last low battery warning")
	c.warning.Disable()

	systray.AddSeparator()

	themes := systray.AddMenuItem("Theme", "Icon theme")
	defaultName := registry.DefaultName()
	for _, name := range registry.Names() {
		item := themes.AddSubMenuItemCheckbox(name, fmt.Sprintf("Use the %s theme", name), name == defaultName)
		c.themes[name] = item
		go c.watchTheme(name, item)
	}

	return c
}

func (c *menuController) watchTheme(name string, item *systray.MenuItem) {
	for range item.ClickedCh {
		logrus.WithField("theme", name).Info("switching theme from tray menu")
		c.registry.MakeDefault(name)
		c.syncThemes()
	}
}

func (c *menuController) syncThemes() {
	defaultName := c.registry.DefaultName()
	for name, item := range c.themes {
		if name == defaultName {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
}

// follow updates the menu from monitor events until ctx is done.
func (c *menuController) follow(ctx context.Context, hub *events.Hub) {
	for e := range hub.Subscribe(ctx) {
		c.handle(e)
	}
}

func (c *menuController) handle(e events.Event) {
	switch e.Name {
	case events.Poll:
		p, err := events.DecodeAs[events.PollEvent](e)
		if err != nil {
			logrus.WithError(err).Warn("failed to decode poll event")
			return
		}
		c.status.SetTitle(statusTitle(p))
		// The theme may also change through the status API.
		c.syncThemes()
	case events.Warning:
		w, err := events.DecodeAs[events.WarningEvent](e)
		if err != nil {
			logrus.WithError(err).Warn("failed to decode warning event")
			return
		}
		c.warning.SetTitle(warningTitle(w))
	}
}
