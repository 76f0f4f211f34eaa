package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/config"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/report"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-core/internal/repository/postgresql"
	periodService "github.com/cmlabs-hris/hris-attendance-core/internal/service/period"
	reportService "github.com/cmlabs-hris/hris-attendance-core/internal/service/report"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// App carries what the commands share. The database is only opened by commands that read it.
type App struct {
	Config *config.Config
	Clock  clockwork.Clock
	DB     *database.Handle

	// Reports is built from DB on first use when nil.
	Reports report.ReportService
}

func NewRootCommand(app *App) *cobra.Command {
	if app.Clock == nil {
		app.Clock = clockwork.NewRealClock()
	}

	root := &cobra.Command{
		Use:   "attendctl",
		Short: "Attendance periods, classification and reports from the command line",
		Long: `attendctl resolves reporting periods, previews attendance classification against the
workday policy and prints punctuality reports read from PostgreSQL.`,
		SilenceUsage: true,
	}

	root.AddCommand(newResolveCommand(app))
	root.AddCommand(newClassifyCommand(app))
	root.AddCommand(newTrendCommand(app))
	root.AddCommand(newDashboardCommand(app))
	root.AddCommand(newExportCommand(app))
	root.AddCommand(newMigrateCommand(app))
	root.AddCommand(newTokenCommand(app))
	return root
}

func (a *App) location() *time.Location {
	if a.Config != nil && a.Config.Business.Location != nil {
		return a.Config.Business.Location
	}
	return time.UTC
}

func (a *App) resolver(loc *time.Location) period.Resolver {
	if loc == nil {
		loc = a.location()
	}
	return periodService.NewResolver(loc, a.Clock)
}

func (a *App) database(ctx context.Context) (*database.DB, error) {
	if a.DB == nil {
		return nil, fmt.Errorf("no database configured")
	}
	return a.DB.Get(ctx)
}

func (a *App) reports(ctx context.Context) (report.ReportService, error) {
	if a.Reports != nil {
		return a.Reports, nil
	}

	db, err := a.database(ctx)
	if err != nil {
		return nil, err
	}

	loc := a.location()
	a.Reports = reportService.NewReportService(
		postgresql.NewAttendanceEventRepository(db, loc),
		postgresql.NewEmployeeRepository(db),
		a.resolver(loc),
		a.Config.Policy,
		a.Config.Business.TrendDays,
	)
	return a.Reports, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
