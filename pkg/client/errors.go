package client

import "errors"

var (
	// ErrDaemonNotRunning is returned when no monitor listens on the socket.
	ErrDaemonNotRunning = errors.New("fdpowermon is not running")

	// ErrPermissionDenied is returned when the socket is not accessible.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when the status API answers 404.
	ErrNotFound = errors.New("not found")
)
