package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kak-tus/fdpowermon/pkg/client"
	"github.com/kak-tus/fdpowermon/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewThemeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Switch the running fdpowermon to another theme",
		Long: `Switch the running fdpowermon to another registered theme.

The change lasts until fdpowermon restarts. Use "fdpowermon themes" to list the
registered themes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ret, err := client.NewClient(unixSocketPath).SetDefaultTheme(args[0])
			if err != nil {
				return fmt.Errorf("failed to switch theme: %w", err)
			}
			cmd.Println(ret)
			return nil
		},
	}
}

func bool2Text(b bool) string {
	if b {
		return color.New(color.Bold, color.FgGreen).Sprint("✔")
	}
	return color.New(color.Bold, color.FgRed).Sprint("✘")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
