package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/report"
	"github.com/spf13/cobra"
)

func newTrendCommand(app *App) *cobra.Command {
	var days int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Print the daily on-time rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.reports(cmd.Context())
			if err != nil {
				return err
			}

			var trend report.Trend
			if cmd.Flags().Changed("days") {
				trend, err = svc.Trend(cmd.Context(), days)
			} else {
				trend, err = svc.WeeklyTrend(cmd.Context())
			}
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), trend)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\n", trend.DateFilter.Display)
			fmt.Fprintln(tw, "DATE\tSESSIONS\tON-TIME")
			for _, p := range trend.Points {
				fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", p.Date, p.TotalSessions, p.Rate*100)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Number of days ending today (default TREND_DAYS)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newDashboardCommand(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the roster, headcount and department punctuality of one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.reports(cmd.Context())
			if err != nil {
				return err
			}

			dashboard, err := svc.AdminDashboard(cmd.Context(), date)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dashboard)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date, YYYY-MM-DD (default today)")
	return cmd
}

func newExportCommand(app *App) *cobra.Command {
	var days int
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the punctuality workbook (XLSX)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.reports(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer f.Close()

			if err := svc.ExportPunctuality(cmd.Context(), f, days); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Trend length in days (default TREND_DAYS)")
	cmd.Flags().StringVarP(&out, "out", "o", "punctuality.xlsx", "Output file")
	return cmd
}
