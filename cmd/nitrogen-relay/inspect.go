package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/nitrogen-relay/config"
	"github.com/lixenwraith/nitrogen-relay/scenario"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [control|level]",
		Short: "Print the resolved relay state for a food setting",
		Long: `Resolves a food setting to its active stations, intensities and N₂O tier.

The argument is a slider position (0-100, clamped) or a tier name (low, medium, high).
Without an argument every tier is printed at its preset position.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for i, level := range scenario.FoodLevels() {
					if i > 0 {
						fmt.Fprintln(out)
					}
					if err := printView(out, scenario.ViewFor(level)); err != nil {
						return err
					}
				}
				return nil
			}

			view, err := parseView(args[0])
			if err != nil {
				return err
			}
			return printView(out, view)
		},
	}
}

// parseView accepts a numeric slider position or a tier name
func parseView(arg string) (scenario.View, error) {
	if n, err := strconv.ParseFloat(arg, 64); err == nil {
		return scenario.Resolve(n), nil
	}
	level, err := scenario.ParseFoodLevel(arg)
	if err != nil {
		return scenario.View{}, err
	}
	return scenario.ViewFor(level), nil
}

func printView(w io.Writer, v scenario.View) error {
	d := v.Details
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Control\t%d\n", int(v.Control))
	fmt.Fprintf(tw, "Food\t%s (%s)\n", v.Level, d.Label)
	fmt.Fprintf(tw, "Scenario\t%s\n", d.Scenario)
	fmt.Fprintf(tw, "Location\t%s\n", d.Location)
	fmt.Fprintf(tw, "Relay\t%s\n", relayChain(v.Active))

	alert := ""
	if v.Gas.Alert {
		alert = "  ⚠ spike risk"
	}
	fmt.Fprintf(tw, "N₂O\t%s %d%%%s\n", v.Gas.Label, v.Gas.Percentage, alert)

	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "Station\tState\tIntensity")
	for _, s := range scenario.Stations() {
		state := "dormant"
		if scenario.IsActive(s.ID, v.Level) {
			state = "active"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", s.Label, state, v.Intensities[s.ID])
	}
	return tw.Flush()
}

func relayChain(active []scenario.StationID) string {
	labels := make([]string, len(active))
	for i, id := range active {
		labels[i] = scenario.StationByID(id).Label
	}
	return strings.Join(labels, " → ")
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Settings file helpers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings as YAML (defaults when --config is unset)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	})
	return cmd
}
