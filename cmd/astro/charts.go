package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quixand/astro-transits/internal/cli"
)

func chartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Manage saved charts",
		Long:  `List and delete natal charts saved in the local database.`,
	}

	cmd.AddCommand(chartsListCmd())
	cmd.AddCommand(chartsDeleteCmd())

	return cmd
}

func chartsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved charts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("Failed to close storage", "error", closeErr)
				}
			}()

			summaries, err := store.ListCharts(ctx)
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no saved charts"))
				return nil
			}

			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-16s %-28s %-18s %s", "Name", "Location", "Time", "UTC")))
			for _, s := range summaries {
				fmt.Printf("%-16s %-28s %-18s %+g\n",
					s.Name, s.LocationName, s.Moment.When.Format("2006-01-02 15:04"), s.Moment.UTCOffset)
			}
			return nil
		},
	}
}

func chartsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("Failed to close storage", "error", closeErr)
				}
			}()

			if err := store.DeleteChart(ctx, args[0]); err != nil {
				return err
			}

			slog.Info("Deleted chart", "name", args[0])
			return nil
		},
	}
}
