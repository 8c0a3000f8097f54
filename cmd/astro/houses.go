package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quixand/astro-transits/internal/chart"
	"github.com/quixand/astro-transits/internal/render"
)

func housesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "houses <chart-name>",
		Short: "Compute houses for each body of a saved chart",
		Long: `Run the house pipeline over every position in the named chart,
computing a house set at each body's own timestamp. Positions without
a julian day are skipped with a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: runHouses,
	}
}

func runHouses(cmd *cobra.Command, args []string) error {
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

	results, skipped, err := chart.HousesForPositions(
		ctx, newFacade(), natal.Positions, natal.Location, natal.HouseSystem)
	if err != nil {
		return err
	}

	fmt.Println(render.FormatBodyHouses(results, skipped))
	return nil
}
