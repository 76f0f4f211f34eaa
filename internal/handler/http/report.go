package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/report"
	"github.com/cmlabs-hris/hris-attendance-core/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	// Daily roster with present/absent flags
	Roster(w http.ResponseWriter, r *http.Request)

	// Per-employee punctuality over week, month or year
	EmployeePerformance(w http.ResponseWriter, r *http.Request)

	// On-time rate per department for any period
	DepartmentPunctuality(w http.ResponseWriter, r *http.Request)

	// Daily on-time series
	Trend(w http.ResponseWriter, r *http.Request)

	// Roster, punctuality and headcount for one day
	Dashboard(w http.ResponseWriter, r *http.Request)

	// XLSX export of the trend and department punctuality
	ExportPunctuality(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Roster handles GET /attendance/roster
func (h *reportHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DailyRoster(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeePerformance handles GET /attendance/employees/{employeeID}/performance
func (h *reportHandlerImpl) EmployeePerformance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.reportService.EmployeePerformance(r.Context(), employeeID, r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DepartmentPunctuality handles GET /attendance/departments/punctuality
func (h *reportHandlerImpl) DepartmentPunctuality(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("period")
	if strings.TrimSpace(name) == "" {
		name = string(period.KindToday)
	}

	p, err := periodFromQuery(r, name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.DepartmentPunctuality(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Trend handles GET /attendance/trend
func (h *reportHandlerImpl) Trend(w http.ResponseWriter, r *http.Request) {
	daysStr := strings.TrimSpace(r.URL.Query().Get("days"))

	var (
		result report.Trend
		err    error
	)
	if daysStr == "" {
		result, err = h.reportService.WeeklyTrend(r.Context())
	} else {
		days, convErr := strconv.Atoi(daysStr)
		if convErr != nil || days < 1 || days > report.MaxTrendDays {
			response.BadRequest(w, fmt.Sprintf("days must be a number between 1 and %d", report.MaxTrendDays), nil)
			return
		}
		result, err = h.reportService.Trend(r.Context(), days)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Dashboard handles GET /attendance/dashboard
func (h *reportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AdminDashboard(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportPunctuality handles GET /attendance/reports/punctuality.xlsx
func (h *reportHandlerImpl) ExportPunctuality(w http.ResponseWriter, r *http.Request) {
	days := validator.PositiveIntOr(r.URL.Query().Get("days"), 0)

	var buf bytes.Buffer
	if err := h.reportService.ExportPunctuality(r.Context(), &buf, days); err != nil {
		slog.Error("Failed to export punctuality report", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Spreadsheet(w, "punctuality.xlsx", buf.Bytes())
}
