package notify

import (
	"github.com/godbus/dbus"
	pkgerrors "github.com/pkg/errors"
)

const (
	notificationsName = "org.freedesktop.Notifications"
	notificationsPath = "/org/freedesktop/Notifications"

	urgencyCritical = byte(2)
)

// DBus sends notifications to the freedesktop notification daemon.
type DBus struct {
	appName string
	conn    *dbus.Conn
}

// NewDBus connects to the session bus.
func NewDBus(appName string) (*DBus, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to connect to session bus")
	}
	return &DBus{
		appName: appName,
		conn:    conn,
	}, nil
}

// Available reports whether a notification daemon owns its bus name.
func (d *DBus) Available() bool {
	var hasOwner bool
	err := d.conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, notificationsName).Store(&hasOwner)
	return err == nil && hasOwner
}

func (d *DBus) Notify(title, body string) error {
	obj := d.conn.Object(notificationsName, notificationsPath)
	call := obj.Call(notificationsName+".Notify", 0,
		d.appName,
		uint32(0),
		"battery-caution",
		title,
		body,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(urgencyCritical)},
		int32(-1),
	)
	if call.Err != nil {
		return pkgerrors.Wrapf(call.Err, "failed to send notification")
	}
	return nil
}
