package main

import (
	"github.com/spf13/cobra"

	"github.com/kak-tus/fdpowermon/pkg/types"
)

func NewThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "Load the configuration and list the themes",
		Long: `Load the theme files and tweak scripts the way fdpowermon does at startup and
list every registered theme. Fails if the configuration is invalid.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			printThemes(cmd, types.DescribeThemes(l.Registry()))

			cmd.Println()
			cmd.Printf("%s %s\n", bold("Warning thresholds:"), formatThresholds(l.Warnings()))
			return nil
		},
	}
}

func printThemes(cmd *cobra.Command, themes []types.ThemeInfo) {
	for i, t := range themes {
		if i > 0 {
			cmd.Println()
		}
		cmd.Printf("%s (default: %s)\n", bold("%s", t.Name), bool2Text(t.Default))
		cmd.Printf("  Steps: %d\n", t.StepCount)
		cmd.Printf("  Dir: %s\n", t.Dir)
		printSteps(cmd, "Discharging", t.Discharging)
		printSteps(cmd, "Charging", t.Charging)
	}
}

func printSteps(cmd *cobra.Command, title string, steps []types.StepInfo) {
	cmd.Printf("  %s:\n", title)
	for _, s := range steps {
		line := "    (" + percent(s.Min) + ", " + percent(s.Max) + "] " + s.Icon
		if s.AltIcon != "" {
			line += " / " + s.AltIcon
		}
		if s.Event {
			line += " [event]"
		}
		cmd.Println(line)
	}
}

func formatThresholds(thresholds []float64) string {
	ret := ""
	for i, t := range thresholds {
		if i > 0 {
			ret += ", "
		}
		ret += percent(t) + "%"
	}
	return ret
}
