// Package notify raises low battery warnings on the desktop.
package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Notifier shows a warning to the user.
type Notifier interface {
	Notify(title, body string) error
}

// Fallback delivers through primary until it fails once, then switches to
// secondary for the rest of the process. The failed warning is re-sent
// through secondary.
type Fallback struct {
	mu        sync.Mutex
	primary   Notifier
	secondary Notifier
	failed    bool
}

func NewFallback(primary, secondary Notifier) *Fallback {
	return &Fallback{
		primary:   primary,
		secondary: secondary,
	}
}

func (f *Fallback) Notify(title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.failed {
		err := f.primary.Notify(title, body)
		if err == nil {
			return nil
		}
		logrus.WithError(err).Warn("notification failed, falling back to dialogs")
		f.failed = true
	}

	return f.secondary.Notify(title, body)
}

// FellBack reports whether the primary notifier has failed.
func (f *Fallback) FellBack() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.failed
}

// Select picks the notifier once at startup: desktop notifications when a
// notification daemon is on the session bus, dialogs otherwise.
func Select(appName string) Notifier {
	dialog := NewDialog()

	d, err := NewDBus(appName)
	if err != nil {
		logrus.WithError(err).Info("desktop notifications unavailable, using dialogs")
		return dialog
	}
	if !d.Available() {
		logrus.Info("no notification daemon running, using dialogs")
		return dialog
	}

	return NewFallback(d, dialog)
}
