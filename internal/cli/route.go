package cli

import (
	"fmt"
	"io"
	"route-recommendation-service/internal/api/dto"
	"route-recommendation-service/internal/api/handlers"
	"route-recommendation-service/internal/app"
	"route-recommendation-service/internal/domain"
	"route-recommendation-service/internal/events"
	"strings"

	"github.com/spf13/cobra"
)

func newRouteCmd() *cobra.Command {
	var req dto.RouteRequest
	var noCache, noTourist, noSafety bool

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Recommend a route",
		Example: `  routectl route --from Centro --to "Parque Ibirapuera" --mode bike --strategy eco
  routectl route --from "São Paulo" --to "Rio de Janeiro" --weather rainy --traffic heavy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.Build(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			off := false
			if noCache {
				req.UseCache = &off
			}
			if noTourist {
				req.TouristInfo = &off
			}
			if noSafety {
				req.SafetyAlerts = &off
			}

			planReq, err := handlers.ToPlanRequest(req, a.Settings)
			if err != nil {
				return err
			}

			before := len(a.Alerts.Recent())
			route, err := a.Planner.Recommend(cmd.Context(), planReq)
			if err != nil {
				return err
			}

			kind := planReq.Strategy
			if kind == domain.StrategyUnset {
				kind = a.Settings.DefaultStrategy
			}
			renderRoute(cmd.OutOrStdout(), route, kind, a.Alerts.Recent()[before:])
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Origin, "from", "", "origin place name")
	f.StringVar(&req.Destination, "to", "", "destination place name")
	f.StringVarP(&req.Mode, "mode", "m", "", "transport mode: car, public_transit, bike, walk")
	f.StringVarP(&req.Strategy, "strategy", "s", "", "fastest, shortest, economical or eco_friendly")
	f.StringVar(&req.Weather, "weather", "", "sunny, rainy, cloudy or snowy")
	f.StringVar(&req.Traffic, "traffic", "", "light, moderate, heavy or gridlock")
	f.BoolVar(&noCache, "no-cache", false, "bypass the route cache")
	f.BoolVar(&noTourist, "no-tourist-info", false, "omit tourist attractions")
	f.BoolVar(&noSafety, "no-safety-alerts", false, "omit safety alerts")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func renderRoute(w io.Writer, r domain.RouteEstimate, kind domain.StrategyKind, alerts []events.Alert) {
	var b strings.Builder

	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("%s -> %s", r.Origin, r.Destination)))
	fmt.Fprintf(&b, "%s %s (%s)\n", labelStyle.Render("mode:    "), r.TransportModeName, kind)
	fmt.Fprintf(&b, "%s %.1f km\n", labelStyle.Render("distance:"), r.DistanceKm)
	fmt.Fprintf(&b, "%s %d min\n", labelStyle.Render("time:    "), r.EstimatedTimeMin)
	fmt.Fprintf(&b, "%s R$ %.2f\n", labelStyle.Render("cost:    "), r.Cost)
	fmt.Fprintf(&b, "%s %.2f kg\n", labelStyle.Render("co2:     "), r.CO2Kg)
	fmt.Fprintln(&b)
	for i, line := range r.Narrative {
		if strings.HasPrefix(line, "Safety alert") {
			line = alertStyle.Render(line)
		}
		fmt.Fprintf(&b, "%2d. %s\n", i+1, line)
	}

	fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(b.String(), "\n")))

	for _, a := range alerts {
		fmt.Fprintln(w, alertStyle.Render("! "+a.Message))
		if a.Advice != "" {
			fmt.Fprintln(w, "  "+a.Advice)
		}
	}
}
