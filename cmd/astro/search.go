package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/quixand/astro-transits/internal/cli"
	"github.com/quixand/astro-transits/internal/model"
	"github.com/quixand/astro-transits/internal/transit"
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <chart-name>",
		Short: "Find when an aspect becomes exact",
		Long: `Search a time window for the instant a transiting body forms an
exact aspect to a natal body.

The scan samples hourly and refines to the minute around the first
close approach; a fast-moving body can slip between hourly samples,
in which case nothing is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().String("natal", "", "natal body (e.g. sun)")
	cmd.Flags().String("transit", "", "transiting body (e.g. mars)")
	cmd.Flags().String("aspect", "", "aspect name (e.g. trine)")
	cmd.Flags().String("from", "", "window start (e.g. \"2024-06-01 00:00\")")
	cmd.Flags().String("to", "", "window end")
	cmd.Flags().Float64("utc-offset", 0, "UTC offset in hours for the window")
	_ = cmd.MarkFlagRequired("natal")
	_ = cmd.MarkFlagRequired("transit")
	_ = cmd.MarkFlagRequired("aspect")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	chartName := args[0]

	natalFlag, _ := cmd.Flags().GetString("natal")
	transitFlag, _ := cmd.Flags().GetString("transit")
	aspectFlag, _ := cmd.Flags().GetString("aspect")
	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")
	utcOffset, _ := cmd.Flags().GetFloat64("utc-offset")

	natalBody, err := model.ParseBody(natalFlag)
	if err != nil {
		return err
	}
	transitBody, err := model.ParseBody(transitFlag)
	if err != nil {
		return err
	}

	from, err := parseMoment(fromFlag)
	if err != nil {
		return err
	}
	to, err := parseMoment(toFlag)
	if err != nil {
		return err
	}
	if to.Before(from) {
		return fmt.Errorf("window end %s is before start %s", toFlag, fromFlag)
	}

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

	solver := transit.NewSolver(newFacade())

	var bar *progressbar.ProgressBar
	solver.Progress = func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("scanning"),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}

	window := model.TimeWindow{Start: from, End: to, UTCOffset: utcOffset}
	exact, found, err := solver.FindExactTime(ctx, natal.Positions, window, natalBody, transitBody, aspectFlag)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	if !found {
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
			"no exact %s %s %s found between %s and %s",
			natalBody, aspectFlag, transitBody, fromFlag, toFlag)))
		return nil
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
		"%s %s transiting %s exact at %s (UTC%+g)",
		natalBody, aspectFlag, transitBody, exact.Format("2006-01-02 15:04"), utcOffset)))
	return nil
}
