package gui

import (
	"context"

	"github.com/getlantern/systray"
	"github.com/sirupsen/logrus"

	"github.com/kak-tus/fdpowermon/pkg/events"
	"github.com/kak-tus/fdpowermon/pkg/theme"
	"github.com/kak-tus/fdpowermon/pkg/version"
)

// Run shows the tray and blocks until Quit is clicked or ctx is done. It
// must be called from the main goroutine. onReady runs once the tray is up;
// cancel is called when the user quits from the menu.
func Run(ctx context.Context, cancel context.CancelFunc, registry *theme.Registry, hub *events.Hub, onReady func()) {
	systray.Run(func() {
		systray.SetTitle("fdpowermon")
		systray.SetTooltip("fdpowermon " + version.Version)
		systray.SetIcon(blankIcon)

		menu := addMenu(registry)
		systray.AddSeparator()
		mQuit := systray.AddMenuItem("Quit", "Quit fdpowermon")

		go menu.follow(ctx, hub)
		go func() {
			select {
			case <-mQuit.ClickedCh:
				logrus.Info("quit from tray menu")
				cancel()
			case <-ctx.Done():
			}
			systray.Quit()
		}()

		if onReady != nil {
			onReady()
		}
	}, func() {
		logrus.Info("tray exiting")
	})
}
