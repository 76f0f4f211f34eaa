package cli

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/spf13/cobra"
)

func newResolveCommand(app *App) *cobra.Command {
	var days, start, end, tz string

	cmd := &cobra.Command{
		Use:   "resolve <period>",
		Short: "Print the window and date filter of a period",
		Long: `Resolve a period (today, yesterday, this-week, this-month, this-year, last-n-days, custom)
in the business timezone and print it as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var loc *time.Location
			if tz != "" {
				l, err := time.LoadLocation(tz)
				if err != nil {
					return fmt.Errorf("unknown timezone %q: %w", tz, err)
				}
				loc = l
			}

			p, err := period.Parse(args[0], days, start, end)
			if err != nil {
				return err
			}

			res, err := app.resolver(loc).Describe(p)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res.DateFilter)
		},
	}

	cmd.Flags().StringVar(&days, "days", "", "Day count for last-n-days")
	cmd.Flags().StringVar(&start, "start", "", "Custom start: YYYY-MM-DD, RFC3339 or epoch milliseconds")
	cmd.Flags().StringVar(&end, "end", "", "Custom end (inclusive): YYYY-MM-DD, RFC3339 or epoch milliseconds")
	cmd.Flags().StringVar(&tz, "tz", "", "Timezone override, e.g. Asia/Jakarta")
	return cmd
}
