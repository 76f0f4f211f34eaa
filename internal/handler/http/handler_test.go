package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/record"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/report"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/jwt"
	periodService "github.com/cmlabs-hris/hris-attendance-core/internal/service/period"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	recordEventFn func(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error)
	previewFn     func(ctx context.Context, req attendance.ClassifyRequest) (attendance.ClassifyResponse, error)
}

func (f *fakeAttendanceService) RecordEvent(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error) {
	return f.recordEventFn(ctx, req)
}

func (f *fakeAttendanceService) Preview(ctx context.Context, req attendance.ClassifyRequest) (attendance.ClassifyResponse, error) {
	return f.previewFn(ctx, req)
}

type fakeReportService struct {
	trendDays []int
	err       error
	periods   []period.Period
}

func (f *fakeReportService) DailyRoster(ctx context.Context, date string) (report.Roster, error) {
	return report.Roster{Date: date, WorkingDay: true}, f.err
}

func (f *fakeReportService) EmployeePerformance(ctx context.Context, employeeID string, periodName string) (report.Performance, error) {
	if f.err != nil {
		return report.Performance{}, f.err
	}
	return report.Performance{EmployeeID: employeeID, Period: periodName}, nil
}

func (f *fakeReportService) DepartmentPunctuality(ctx context.Context, p period.Period) (report.DepartmentPunctuality, error) {
	f.periods = append(f.periods, p)
	return report.DepartmentPunctuality{Departments: map[string]report.PunctualityStat{"Finance": {Rate: 1, SampleSize: 2}}}, f.err
}

func (f *fakeReportService) WeeklyTrend(ctx context.Context) (report.Trend, error) {
	return f.Trend(ctx, 7)
}

func (f *fakeReportService) Trend(ctx context.Context, days int) (report.Trend, error) {
	f.trendDays = append(f.trendDays, days)
	if days < 1 {
		return report.Trend{}, report.ErrInvalidTrendLength
	}
	return report.Trend{Points: make([]report.TrendPoint, days)}, f.err
}

func (f *fakeReportService) AdminDashboard(ctx context.Context, date string) (report.AdminDashboard, error) {
	return report.AdminDashboard{Date: date, TotalEmployees: 3}, f.err
}

func (f *fakeReportService) ExportPunctuality(ctx context.Context, w io.Writer, days int) error {
	if f.err != nil {
		return f.err
	}
	_, err := fmt.Fprintf(w, "xlsx:%d", days)
	return err
}

type fakeRecordService struct {
	last record.Pagination
}

func (f *fakeRecordService) Query(ctx context.Context, window period.Window, pagination record.Pagination) (record.Page, error) {
	return record.Page{}, nil
}

func (f *fakeRecordService) QueryPeriod(ctx context.Context, p period.Period, pagination record.Pagination) (record.Page, error) {
	f.last = pagination
	return record.Page{Page: pagination.Page, Limit: pagination.Limit, Total: 42, TotalPages: 3}, nil
}

type testServer struct {
	router     http.Handler
	attendance *fakeAttendanceService
	reports    *fakeReportService
	records    *fakeRecordService
}

func newTestServer(t *testing.T, jwtService jwt.Service) *testServer {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	ts := &testServer{
		attendance: &fakeAttendanceService{},
		reports:    &fakeReportService{},
		records:    &fakeRecordService{},
	}
	resolver := periodService.NewResolver(loc, clockwork.NewFakeClockAt(time.Date(2026, 10, 21, 9, 0, 0, 0, loc)))

	ts.router = NewRouter(
		RouterOptions{JWTService: jwtService, Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))},
		NewPeriodHandler(resolver),
		NewAttendanceHandler(ts.attendance),
		NewReportHandler(ts.reports),
		NewRecordHandler(ts.records, 20),
	)
	return ts
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalItems int64 `json:"total_items"`
	} `json:"meta"`
}

func (ts *testServer) do(t *testing.T, method, target string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestPeriodHandler_Resolve(t *testing.T) {
	ts := newTestServer(t, nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/periods/this-week", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res period.Resolution
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "This Week", res.DateFilter.DateLabel)
	assert.Equal(t, "2026-10-19", res.DateFilter.StartDate)
	assert.Equal(t, "2026-10-25", res.DateFilter.EndDate)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/periods/last-n-days?days=3", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/periods/fortnight", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/periods/custom?start=2026-10-10&end=2026-10-01", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/periods/last-n-days?days=5000000", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/periods/custom?start=2026-10-01&end=999999999999999", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_RecordEvent(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"created", nil, http.StatusCreated, ""},
		{"policy violation", fmt.Errorf("%w: lunch-out is not permitted on Saturday", attendance.ErrPolicyViolation), http.StatusUnprocessableEntity, "POLICY_VIOLATION"},
		{"duplicate", attendance.ErrDuplicateSession, http.StatusConflict, "CONFLICT"},
		{"unknown employee", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			ts.attendance.recordEventFn = func(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error) {
				assert.Equal(t, "check-in", req.SessionType)
				if tt.err != nil {
					return attendance.EventResponse{}, tt.err
				}
				return attendance.EventResponse{ID: "ev-1", Status: "late"}, nil
			}

			rec, env := ts.do(t, http.MethodPost, "/api/v1/attendance/events", map[string]string{
				"employee_id":  "0192b6a4-3f1e-7c2d-9a4b-5e6f7a8b9c0d",
				"session_type": "check-in",
				"date":         "2026-10-19",
				"actual_time":  "08:10",
			}, "")
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantErr, env.Error.Code)
			}
		})
	}
}

func TestAttendanceHandler_ValidationAndMalformedBody(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.attendance.previewFn = func(ctx context.Context, req attendance.ClassifyRequest) (attendance.ClassifyResponse, error) {
		return attendance.ClassifyResponse{}, req.Validate()
	}

	rec, env := ts.do(t, http.MethodPost, "/api/v1/attendance/classify", map[string]string{
		"session_type": "coffee",
		"date":         "2026-10-19",
		"actual_time":  "8am",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "session_type")
	assert.Contains(t, env.Error.Details, "actual_time")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/classify", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_Routes(t *testing.T) {
	ts := newTestServer(t, nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/attendance/employees/abc/performance?period=week", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var perf report.Performance
	require.NoError(t, json.Unmarshal(env.Data, &perf))
	assert.Equal(t, "abc", perf.EmployeeID)
	assert.Equal(t, "week", perf.Period)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/departments/punctuality", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/departments/punctuality?period=last-n-days&days=14", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, ts.reports.periods, 2)
	assert.Equal(t, period.Today(), ts.reports.periods[0])
	assert.Equal(t, period.LastNDays(14), ts.reports.periods[1])

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/roster?date=2026-10-19", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/dashboard", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReportHandler_Trend(t *testing.T) {
	ts := newTestServer(t, nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/attendance/trend", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var trend report.Trend
	require.NoError(t, json.Unmarshal(env.Data, &trend))
	assert.Len(t, trend.Points, 7)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/trend?days=14", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/trend?days=two", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/trend?days=0", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = ts.do(t, http.MethodGet, fmt.Sprintf("/api/v1/attendance/trend?days=%d", report.MaxTrendDays), nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/attendance/trend?days=3000000", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)

	// out-of-range lengths never reach the service
	assert.Equal(t, []int{7, 14, report.MaxTrendDays}, ts.reports.trendDays)
}

func TestReportHandler_Export(t *testing.T) {
	ts := newTestServer(t, nil)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/attendance/reports/punctuality.xlsx?days=3", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "punctuality.xlsx")
	assert.Equal(t, "xlsx:3", rec.Body.String())

	ts.reports.err = errors.New("read timeout")
	rec, env := ts.do(t, http.MethodGet, "/api/v1/attendance/reports/punctuality.xlsx", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
}

func TestRecordHandler_List(t *testing.T) {
	ts := newTestServer(t, nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/records/this-month?page=abc&limit=-5", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, record.Pagination{Page: 1, Limit: 20}, ts.records.last)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(42), env.Meta.TotalItems)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/records/someday", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Authentication(t *testing.T) {
	jwtService := jwt.NewJWTService("handler-test-secret", nil)
	ts := newTestServer(t, jwtService)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/periods/today", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	employeeToken, _, err := jwtService.GenerateAccessToken("emp-1", jwt.RoleEmployee, time.Hour)
	require.NoError(t, err)
	adminToken, _, err := jwtService.GenerateAccessToken("admin-1", jwt.RoleAdmin, time.Hour)
	require.NoError(t, err)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/periods/today", nil, employeeToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/attendance/dashboard", nil, employeeToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/dashboard", nil, adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	foreign, _, err := jwt.NewJWTService("other", nil).GenerateAccessToken("admin-1", jwt.RoleAdmin, time.Hour)
	require.NoError(t, err)
	rec, _ = ts.do(t, http.MethodGet, "/api/v1/periods/today", nil, foreign)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
