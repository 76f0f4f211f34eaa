package report

import (
	"context"
	"io"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
)

// ReportService aggregates classified attendance events over business-timezone windows.
// Every operation is a single bounded read followed by an in-memory fold.
type ReportService interface {
	// DailyRoster groups a day's events by employee, date "" meaning today
	DailyRoster(ctx context.Context, date string) (Roster, error)

	// EmployeePerformance folds one employee's events over this week, month or year
	EmployeePerformance(ctx context.Context, employeeID string, periodName string) (Performance, error)

	// DepartmentPunctuality returns per-department rates over p
	DepartmentPunctuality(ctx context.Context, p period.Period) (DepartmentPunctuality, error)

	// WeeklyTrend is Trend over the configured number of days
	WeeklyTrend(ctx context.Context) (Trend, error)

	// Trend returns one point per day for the last `days` calendar days including today
	Trend(ctx context.Context, days int) (Trend, error)

	// AdminDashboard combines roster and punctuality for one date, "" meaning today
	AdminDashboard(ctx context.Context, date string) (AdminDashboard, error)

	// ExportPunctuality writes the trend and today's department punctuality as an XLSX workbook
	ExportPunctuality(ctx context.Context, w io.Writer, days int) error
}
