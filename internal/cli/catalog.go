package cli

import (
	"fmt"
	"route-recommendation-service/internal/config"
	"route-recommendation-service/internal/domain"

	"github.com/spf13/cobra"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List transport modes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(config.Get("SETTINGS_FILE", ""))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render("Transport modes"))
			for _, m := range domain.Modes() {
				p := domain.ProfileFor(m)
				cost := fmt.Sprintf("R$ %.2f/km", p.CostPerKm())
				if p.FlatRate() {
					cost = fmt.Sprintf("R$ %.2f flat", p.CostPerKm())
				}
				marker := " "
				if m == settings.DefaultMode {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %-15s %-15s %5.0f km/h  %-14s %.2f kg CO2/km\n",
					marker, m, p.Name(), p.Speed(), cost, p.EmissionFactor())
			}
			return nil
		},
	}
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List route strategies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(config.Get("SETTINGS_FILE", ""))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, titleStyle.Render("Route strategies"))
			for _, k := range domain.StrategyKinds() {
				marker := " "
				if k == settings.DefaultStrategy {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %s\n", marker, k)
			}
			return nil
		},
	}
}
