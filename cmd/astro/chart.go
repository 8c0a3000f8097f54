package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quixand/astro-transits/internal/chart"
	"github.com/quixand/astro-transits/internal/common"
	"github.com/quixand/astro-transits/internal/render"
)

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart <location>",
		Short: "Calculate a natal chart",
		Long: `Calculate a natal chart for a place name and civil time.

The location is geocoded via Nominatim; the time is interpreted with
the numeric UTC offset given by --utc-offset.`,
		Args: cobra.ExactArgs(1),
		RunE: runChart,
	}

	cmd.Flags().String("time", "", "civil date/time (e.g. \"1990-01-01 12:00\")")
	cmd.Flags().Float64("utc-offset", 0, "UTC offset in hours (east positive)")
	cmd.Flags().String("save", "", "save the chart under this name")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func runChart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	locationName := args[0]

	timeFlag, _ := cmd.Flags().GetString("time")
	utcOffset, _ := cmd.Flags().GetFloat64("utc-offset")
	saveName, _ := cmd.Flags().GetString("save")

	if !cmd.Flags().Changed("utc-offset") && viper.IsSet("chart.utc_offset") {
		utcOffset = viper.GetFloat64("chart.utc_offset")
	}

	when, err := parseMoment(timeFlag)
	if err != nil {
		return err
	}

	houseSystem, err := configuredHouseSystem()
	if err != nil {
		return err
	}

	calc := chart.NewCalculator(newGeocoder(), newFacade(), houseSystem)
	result, err := calc.Calculate(ctx, locationName, when, utcOffset)
	if err != nil {
		if errors.Is(err, common.ErrLocationNotFound) {
			return common.NewUserError(fmt.Sprintf("could not find location %q", locationName), err)
		}
		return err
	}

	fmt.Println(render.FormatChart(result))

	if saveName != "" {
		store, err := initStorage(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("Failed to close storage", "error", closeErr)
			}
		}()

		result.Name = saveName
		if err := store.SaveChart(ctx, result); err != nil {
			return fmt.Errorf("failed to save chart: %w", err)
		}
		slog.Info("Saved chart", "name", saveName)
	}

	return nil
}
