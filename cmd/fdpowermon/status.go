package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kak-tus/fdpowermon/pkg/client"
	"github.com/kak-tus/fdpowermon/pkg/types"
)

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get the status of the running fdpowermon",
		Long:  `Get the last battery reading, the icon shown and the warning state of the running fdpowermon.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := client.NewClient(unixSocketPath).GetStatus()
			if err != nil {
				return err
			}

			printStatus(cmd, s)
			return nil
		},
	}
}

func printStatus(cmd *cobra.Command, s *types.Status) {
	if !s.Valid {
		cmd.Println("No battery reading yet.")
		return
	}

	cmd.Println(bold("Battery:"))
	cmd.Printf("  Level: %s%%\n", bold("%s", percent(s.Level)))
	cmd.Printf("  Direction: %s\n", s.Direction)
	for _, b := range s.Batteries {
		cmd.Printf("    %s\n", b.Describe())
	}
	cmd.Printf("  Polled at: %s\n", s.PolledAt.Format("15:04:05"))

	cmd.Println()
	cmd.Println(bold("Display:"))
	cmd.Printf("  Theme: %s\n", s.Theme)
	if s.Icon == "" {
		cmd.Println("  Icon: hidden (no step matches)")
	} else {
		cmd.Printf("  Icon: %s\n", s.Icon)
	}
	cmd.Printf("  Flashing: %s\n", bool2Text(s.Flashing))

	cmd.Println()
	cmd.Println(bold("Warnings:"))
	cmd.Printf("  Thresholds: %s\n", formatThresholds(s.Warnings))
	if s.LastWarning >= 100 {
		cmd.Println("  Last warning: none")
	} else {
		cmd.Printf("  Last warning: at %s%%\n", percent(s.LastWarning))
	}
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

