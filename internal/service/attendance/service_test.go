package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/validator"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "0192b6a4-3f1e-7c2d-9a4b-5e6f7a8b9c0d"

type fakeEventRepo struct {
	listEventsFn       func(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error)
	createFn           func(ctx context.Context, e attendance.Event) (attendance.Event, error)
	existsForSessionFn func(ctx context.Context, employeeID, date string, session attendance.SessionType) (bool, error)
}

func (f *fakeEventRepo) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	return f.listEventsFn(ctx, filter)
}
func (f *fakeEventRepo) Create(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	return f.createFn(ctx, e)
}
func (f *fakeEventRepo) ExistsForSession(ctx context.Context, employeeID, date string, session attendance.SessionType) (bool, error) {
	return f.existsForSessionFn(ctx, employeeID, date, session)
}

type fakeEmployeeRepo struct {
	getByIDFn    func(ctx context.Context, id string) (employee.Employee, error)
	listActiveFn func(ctx context.Context, department *string) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) ListActive(ctx context.Context, department *string) ([]employee.Employee, error) {
	return f.listActiveFn(ctx, department)
}

type passthroughTx struct{ calls int }

func (p *passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

func newTestService(t *testing.T, repo *fakeEventRepo, tx *passthroughTx) attendance.AttendanceService {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	employees := &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			if id != testEmployeeID {
				return employee.Employee{}, employee.ErrEmployeeNotFound
			}
			return employee.Employee{ID: id, FullName: "Dewi", Department: "Finance", Active: true}, nil
		},
	}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 10, 19, 1, 10, 0, 0, time.UTC))
	return NewAttendanceService(repo, employees, tx, NewClassifier(), attendance.DefaultPolicy(), loc, clock)
}

func TestAttendanceService_RecordEvent_Success(t *testing.T) {
	var saved attendance.Event
	repo := &fakeEventRepo{
		existsForSessionFn: func(ctx context.Context, employeeID, date string, session attendance.SessionType) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, e attendance.Event) (attendance.Event, error) {
			saved = e
			return e, nil
		},
	}
	tx := &passthroughTx{}
	svc := newTestService(t, repo, tx)

	resp, err := svc.RecordEvent(context.Background(), attendance.RecordEventRequest{
		EmployeeID:   testEmployeeID,
		SessionType:  "check-in",
		CalendarDate: "2026-10-19",
		ActualTime:   "08:10",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "late", resp.Status)
	assert.Equal(t, "Finance", resp.Department)
	assert.Equal(t, "2026-10-19", resp.Date)
	assert.Equal(t, "2026-10-19T08:10:00+07:00", resp.RecordedAt)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, attendance.StatusLate, saved.Status)
	assert.Equal(t, resp.ID, saved.ID)
}

func TestAttendanceService_RecordEvent_PolicyViolationIsNotStored(t *testing.T) {
	repo := &fakeEventRepo{
		existsForSessionFn: func(ctx context.Context, employeeID, date string, session attendance.SessionType) (bool, error) {
			t.Fatal("storage must not be touched for a rejected session")
			return false, nil
		},
		createFn: func(ctx context.Context, e attendance.Event) (attendance.Event, error) {
			t.Fatal("storage must not be touched for a rejected session")
			return e, nil
		},
	}
	tx := &passthroughTx{}
	svc := newTestService(t, repo, tx)

	_, err := svc.RecordEvent(context.Background(), attendance.RecordEventRequest{
		EmployeeID:   testEmployeeID,
		SessionType:  "lunch-out",
		CalendarDate: "2026-10-24",
		ActualTime:   "13:00",
	})
	assert.ErrorIs(t, err, attendance.ErrPolicyViolation)
	assert.Equal(t, 0, tx.calls)
}

func TestAttendanceService_RecordEvent_Duplicate(t *testing.T) {
	repo := &fakeEventRepo{
		existsForSessionFn: func(ctx context.Context, employeeID, date string, session attendance.SessionType) (bool, error) {
			return true, nil
		},
		createFn: func(ctx context.Context, e attendance.Event) (attendance.Event, error) {
			t.Fatal("duplicate must not be inserted")
			return e, nil
		},
	}
	svc := newTestService(t, repo, &passthroughTx{})

	_, err := svc.RecordEvent(context.Background(), attendance.RecordEventRequest{
		EmployeeID:   testEmployeeID,
		SessionType:  "check-out",
		CalendarDate: "2026-10-19",
		ActualTime:   "17:00",
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateSession)
}

func TestAttendanceService_RecordEvent_StorageErrorPassesThrough(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &fakeEventRepo{
		existsForSessionFn: func(ctx context.Context, employeeID, date string, session attendance.SessionType) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, e attendance.Event) (attendance.Event, error) {
			return attendance.Event{}, boom
		},
	}
	svc := newTestService(t, repo, &passthroughTx{})

	_, err := svc.RecordEvent(context.Background(), attendance.RecordEventRequest{
		EmployeeID:   testEmployeeID,
		SessionType:  "check-in",
		CalendarDate: "2026-10-19",
		ActualTime:   "08:00",
	})
	assert.ErrorIs(t, err, boom)
}

func TestAttendanceService_RecordEvent_Validation(t *testing.T) {
	svc := newTestService(t, &fakeEventRepo{}, &passthroughTx{})

	_, err := svc.RecordEvent(context.Background(), attendance.RecordEventRequest{
		EmployeeID:   "not-a-uuid",
		SessionType:  "nap",
		CalendarDate: "19-10-2026",
		ActualTime:   "8",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "session_type")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "actual_time")
}

func TestAttendanceService_RecordEvent_UnknownEmployee(t *testing.T) {
	svc := newTestService(t, &fakeEventRepo{}, &passthroughTx{})

	_, err := svc.RecordEvent(context.Background(), attendance.RecordEventRequest{
		EmployeeID:   "0192b6a4-3f1e-7c2d-9a4b-000000000000",
		SessionType:  "check-in",
		CalendarDate: "2026-10-19",
		ActualTime:   "08:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Preview(t *testing.T) {
	svc := newTestService(t, &fakeEventRepo{}, &passthroughTx{})

	resp, err := svc.Preview(context.Background(), attendance.ClassifyRequest{
		SessionType:  "check-out",
		CalendarDate: "2026-10-19",
		ActualTime:   "16:50",
	})
	require.NoError(t, err)
	assert.Equal(t, "early", resp.Status)
	assert.Equal(t, "17:00", resp.ExpectedTime)
	assert.Equal(t, -10, resp.DeltaMinutes)

	_, err = svc.Preview(context.Background(), attendance.ClassifyRequest{
		SessionType:  "check-in",
		CalendarDate: "2026-10-25",
		ActualTime:   "08:00",
	})
	assert.ErrorIs(t, err, attendance.ErrPolicyViolation)
}
