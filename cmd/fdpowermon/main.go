package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kak-tus/fdpowermon/pkg/client"
	"github.com/kak-tus/fdpowermon/pkg/config"
)

var (
	logLevel       = "info"
	sourceName     = sourceACPI
	unixSocketPath = client.DefaultSocketPath()
	systemDir      = config.DefaultSystemDir
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	switch {
	case errors.Is(err, client.ErrDaemonNotRunning):
		fmt.Fprintln(os.Stderr, "\nError: fdpowermon is not running")
		fmt.Fprintf(os.Stderr, "Start it first, or point --socket at its socket (currently %s).\n", unixSocketPath)
	case errors.Is(err, client.ErrPermissionDenied):
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "  - The socket belongs to another user's fdpowermon")
	case errors.Is(err, config.ErrMissingHomeConfig):
		fmt.Fprintln(os.Stderr, "\nError: set HOME or XDG_CONFIG_HOME so the user configuration can be found")
	}
}

func main() {
	// The tray event loop must own the main thread.
	runtime.LockOSThread()

	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fdpowermon",
		Short: "fdpowermon shows the battery level in the system tray",
		Long: `fdpowermon shows the battery level in the system tray.

Icons come from themes defined in /etc/fdpowermon/theme.cfg and
~/.config/fdpowermon/theme.cfg. Executable tweak scripts next to them can pick
the default theme, attach commands to theme steps and change the low battery
warning thresholds.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&unixSocketPath, "socket", unixSocketPath, "status API unix socket path")
	globalFlags.StringVar(&systemDir, "system-dir", systemDir, "directory holding the system theme.cfg and tweaks")

	cmd.Flags().StringVar(&sourceName, "source", sourceName, "battery source (acpi, native)")

	cmd.AddCommand(
		NewVersionCommand(),
		NewStatusCommand(),
		NewThemesCommand(),
		NewThemeCommand(),
	)

	return cmd
}
