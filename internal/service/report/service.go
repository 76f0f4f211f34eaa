package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/report"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/validator"
	periodService "github.com/cmlabs-hris/hris-attendance-core/internal/service/period"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	attendance.EventReader
	employee.EmployeeReader
	resolver  period.Resolver
	policy    attendance.Policy
	trendDays int
}

func NewReportService(
	eventReader attendance.EventReader,
	employeeReader employee.EmployeeReader,
	resolver period.Resolver,
	policy attendance.Policy,
	trendDays int,
) report.ReportService {
	if trendDays < 1 {
		trendDays = 7
	}
	return &ReportServiceImpl{
		EventReader:    eventReader,
		EmployeeReader: employeeReader,
		resolver:       resolver,
		policy:         policy,
		trendDays:      trendDays,
	}
}

// readWindow is the single bounded read behind every aggregation.
func (s *ReportServiceImpl) readWindow(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	events, err := s.EventReader.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	return inWindow(events, filter.Window, s.resolver.Location()), nil
}

// DailyRoster implements report.ReportService.
func (s *ReportServiceImpl) DailyRoster(ctx context.Context, date string) (report.Roster, error) {
	dashboard, err := s.AdminDashboard(ctx, date)
	if err != nil {
		return report.Roster{}, err
	}
	return report.Roster{
		Date:       dashboard.Date,
		WorkingDay: dashboard.WorkingDay,
		Entries:    dashboard.DailyRoster,
	}, nil
}

// EmployeePerformance implements report.ReportService.
func (s *ReportServiceImpl) EmployeePerformance(ctx context.Context, employeeID string, periodName string) (report.Performance, error) {
	if !validator.IsValidUUID(employeeID) {
		return report.Performance{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		}}
	}

	var p period.Period
	switch strings.ToLower(strings.TrimSpace(periodName)) {
	case "week":
		p = period.ThisWeek()
	case "", "month":
		periodName = "month"
		p = period.ThisMonth()
	case "year":
		p = period.ThisYear()
	default:
		return report.Performance{}, report.ErrInvalidPerformancePeriod
	}

	emp, err := s.EmployeeReader.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.Performance{}, employee.ErrEmployeeNotFound
		}
		return report.Performance{}, fmt.Errorf("failed to get employee: %w", err)
	}

	res, err := s.resolver.Describe(p)
	if err != nil {
		return report.Performance{}, err
	}

	events, err := s.readWindow(ctx, attendance.EventFilter{Window: res.Window, EmployeeID: &employeeID})
	if err != nil {
		return report.Performance{}, err
	}

	var own []attendance.Event
	for _, e := range events {
		if e.EmployeeID == employeeID {
			own = append(own, e)
		}
	}
	t := foldTally(own)

	return report.Performance{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.FullName,
		Period:        strings.ToLower(strings.TrimSpace(periodName)),
		DateFilter:    res.DateFilter,
		OnTimeRate:    t.Rate(),
		OnTimeCount:   t.OnTime,
		LateCount:     t.Late,
		EarlyCount:    t.Early,
		OvertimeCount: t.Overtime,
		TotalSessions: t.Total(),
	}, nil
}

// DepartmentPunctuality implements report.ReportService.
func (s *ReportServiceImpl) DepartmentPunctuality(ctx context.Context, p period.Period) (report.DepartmentPunctuality, error) {
	res, err := s.resolver.Describe(p)
	if err != nil {
		return report.DepartmentPunctuality{}, err
	}

	events, err := s.readWindow(ctx, attendance.EventFilter{Window: res.Window})
	if err != nil {
		return report.DepartmentPunctuality{}, err
	}

	return report.DepartmentPunctuality{
		DateFilter:  res.DateFilter,
		Departments: punctualityByDepartment(events),
	}, nil
}

// WeeklyTrend implements report.ReportService.
func (s *ReportServiceImpl) WeeklyTrend(ctx context.Context) (report.Trend, error) {
	return s.Trend(ctx, s.trendDays)
}

// Trend implements report.ReportService.
func (s *ReportServiceImpl) Trend(ctx context.Context, days int) (report.Trend, error) {
	if days < 1 || days > report.MaxTrendDays {
		return report.Trend{}, report.ErrInvalidTrendLength
	}

	res, err := s.resolver.Describe(period.LastNDays(days - 1))
	if err != nil {
		return report.Trend{}, err
	}
	// labelled by point count, not by prior days
	res.DateFilter.DateLabel = fmt.Sprintf("Last %d Days", days)

	events, err := s.readWindow(ctx, attendance.EventFilter{Window: res.Window})
	if err != nil {
		return report.Trend{}, err
	}

	return report.Trend{
		DateFilter: res.DateFilter,
		Points:     trendPoints(events, res.Window, s.resolver.Location()),
	}, nil
}

// AdminDashboard implements report.ReportService.
func (s *ReportServiceImpl) AdminDashboard(ctx context.Context, date string) (report.AdminDashboard, error) {
	day, err := s.resolver.Day(date)
	if err != nil {
		return report.AdminDashboard{}, err
	}

	var (
		employees []employee.Employee
		events    []attendance.Event
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.EmployeeReader.ListActive(gCtx, nil)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		employees = list
		return nil
	})

	g.Go(func() error {
		list, err := s.readWindow(gCtx, attendance.EventFilter{Window: day})
		if err != nil {
			return err
		}
		events = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.AdminDashboard{}, err
	}

	loc := s.resolver.Location()
	workingDay := s.policy.IsWorkingDay(day.Start.In(loc))
	roster := buildRoster(employees, events, workingDay, loc)
	departments := foldBy(events, departmentKey)

	active := make(map[string]bool, len(employees))
	for _, emp := range employees {
		active[emp.ID] = true
	}

	var present, absent int
	for _, entry := range roster {
		if !active[entry.EmployeeID] {
			continue
		}
		if entry.Present {
			present++
		}
		if entry.Absent {
			absent++
		}
	}

	return report.AdminDashboard{
		Date:                  periodService.DateKey(day.Start.In(loc)),
		WorkingDay:            workingDay,
		DailyRoster:           roster,
		DepartmentPunctuality: departmentStats(departments),
		OverallPunctuality:    punctualityStat(mergeTallies(departments)),
		TotalEmployees:        len(employees),
		PresentCount:          present,
		AbsentCount:           absent,
	}, nil
}

// ExportPunctuality implements report.ReportService. days < 1 exports the configured trend length.
func (s *ReportServiceImpl) ExportPunctuality(ctx context.Context, w io.Writer, days int) error {
	if days < 1 {
		days = s.trendDays
	}
	trend, err := s.Trend(ctx, days)
	if err != nil {
		return err
	}
	departments, err := s.DepartmentPunctuality(ctx, period.Today())
	if err != nil {
		return err
	}
	return writePunctualityWorkbook(w, trend, departments)
}
