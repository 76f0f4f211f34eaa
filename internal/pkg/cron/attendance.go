package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/report"
)

type AttendanceJobs struct {
	reportService report.ReportService
	interval      time.Duration
	logger        *slog.Logger
}

func NewAttendanceJobs(reportService report.ReportService, interval time.Duration, logger *slog.Logger) *AttendanceJobs {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AttendanceJobs{
		reportService: reportService,
		interval:      interval,
		logger:        logger,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("department_punctuality_digest", j.interval, j.DepartmentPunctualityDigest)
}

// DepartmentPunctualityDigest logs yesterday's on-time rate per department and the absentee
// count of that day.
func (j *AttendanceJobs) DepartmentPunctualityDigest(ctx context.Context) error {
	punctuality, err := j.reportService.DepartmentPunctuality(ctx, period.Yesterday())
	if err != nil {
		return fmt.Errorf("failed to compute department punctuality: %w", err)
	}

	names := make([]string, 0, len(punctuality.Departments))
	for name := range punctuality.Departments {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		stat := punctuality.Departments[name]
		j.logger.Info("Cron: department punctuality",
			"date", punctuality.DateFilter.StartDate,
			"department", name,
			"on_time_rate", stat.Rate,
			"sample_size", stat.SampleSize,
		)
	}

	dashboard, err := j.reportService.AdminDashboard(ctx, punctuality.DateFilter.StartDate)
	if err != nil {
		return fmt.Errorf("failed to compute roster: %w", err)
	}

	j.logger.Info("Cron: attendance digest",
		"date", dashboard.Date,
		"working_day", dashboard.WorkingDay,
		"departments", len(names),
		"on_time_rate", dashboard.OverallPunctuality.Rate,
		"employees", dashboard.TotalEmployees,
		"present", dashboard.PresentCount,
		"absent", dashboard.AbsentCount,
	)
	return nil
}
