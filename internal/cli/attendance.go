package cli

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-core/internal/config"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/validator"
	attendanceService "github.com/cmlabs-hris/hris-attendance-core/internal/service/attendance"
	"github.com/spf13/cobra"
)

func newClassifyCommand(app *App) *cobra.Command {
	var session, date, actual, policyPath string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify one swipe against the workday policy without recording it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := attendance.DefaultPolicy()
			if app.Config != nil {
				policy = app.Config.Policy
			}
			if policyPath != "" {
				p, err := config.LoadPolicy(policyPath)
				if err != nil {
					return err
				}
				if err := p.Validate(); err != nil {
					return err
				}
				policy = p
			}

			svc := attendanceService.NewAttendanceService(nil, nil, nil, attendanceService.NewClassifier(), policy, app.location(), app.Clock)
			res, err := svc.Preview(cmd.Context(), attendance.ClassifyRequest{
				SessionType:  session,
				CalendarDate: date,
				ActualTime:   actual,
			})
			if err != nil {
				var verrs validator.ValidationErrors
				if errors.As(err, &verrs) {
					for field, msg := range verrs.ToMap() {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, msg)
					}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s at %s (expected %s, %+d min): %s\n",
				res.SessionType, res.Date, res.ActualTime, res.ExpectedTime, res.DeltaMinutes, res.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "check-in, lunch-out, lunch-in or check-out")
	cmd.Flags().StringVar(&date, "date", "", "Calendar date, YYYY-MM-DD")
	cmd.Flags().StringVar(&actual, "time", "", "Actual time, HH:MM")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Workday policy YAML file")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}
