package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/quixand/astro-transits/internal/render"
	"github.com/quixand/astro-transits/internal/transit"
)

func transitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transits <chart-name>",
		Short: "Show transiting aspects to a saved chart",
		Long: `Compute transiting planet positions at a query time and report
every aspect they form to the named natal chart.`,
		Args: cobra.ExactArgs(1),
		RunE: runTransits,
	}

	cmd.Flags().String("time", "", "query date/time (default: now)")
	cmd.Flags().Float64("utc-offset", 0, "UTC offset in hours for the query time")

	return cmd
}

func runTransits(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	chartName := args[0]

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("Failed to close storage", "error", closeErr)
		}
	}()

	natal, err := store.GetChart(ctx, chartName)
	if err != nil {
		return err
	}

	utcOffset, _ := cmd.Flags().GetFloat64("utc-offset")
	at := time.Now().UTC()
	if timeFlag, _ := cmd.Flags().GetString("time"); timeFlag != "" {
		if at, err = parseMoment(timeFlag); err != nil {
			return err
		}
	}

	report, err := transit.Snapshot(ctx, newFacade(), natal.Positions, at, utcOffset)
	if err != nil {
		return err
	}

	fmt.Println(render.FormatTransitReport(report))
	return nil
}
