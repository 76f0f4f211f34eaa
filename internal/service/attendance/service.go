package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type AttendanceServiceImpl struct {
	attendance.EventRepository
	employee.EmployeeReader
	tx         attendance.Transactor
	classifier attendance.Classifier
	policy     attendance.Policy
	loc        *time.Location
	clock      clockwork.Clock
}

func NewAttendanceService(
	eventRepo attendance.EventRepository,
	employeeRepo employee.EmployeeReader,
	tx attendance.Transactor,
	classifier attendance.Classifier,
	policy attendance.Policy,
	loc *time.Location,
	clock clockwork.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		EventRepository: eventRepo,
		EmployeeReader:  employeeRepo,
		tx:              tx,
		classifier:      classifier,
		policy:          policy,
		loc:             loc,
		clock:           clock,
	}
}

// RecordEvent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordEvent(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.CalendarDate, s.loc)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}
	session := attendance.SessionType(req.SessionType)

	emp, err := s.EmployeeReader.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.EventResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.EventResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// A rejected session is never stored.
	status, err := s.classifier.Classify(session, date, req.ActualTime, s.policy)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to generate event id: %w", err)
	}

	event := attendance.Event{
		ID:           id.String(),
		EmployeeID:   emp.ID,
		SessionType:  session,
		CalendarDate: date,
		RecordedAt:   s.clock.Now().UTC(),
		ActualTime:   req.ActualTime,
		Status:       status,
		Department:   emp.Department,
	}

	var created attendance.Event
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := s.EventRepository.ExistsForSession(ctx, emp.ID, req.CalendarDate, session)
		if err != nil {
			return fmt.Errorf("failed to check existing session: %w", err)
		}
		if exists {
			return attendance.ErrDuplicateSession
		}

		created, err = s.EventRepository.Create(ctx, event)
		if err != nil {
			return fmt.Errorf("failed to create attendance event: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.EventResponse{}, err
	}

	return mapEventToResponse(created, s.loc), nil
}

// Preview implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Preview(ctx context.Context, req attendance.ClassifyRequest) (attendance.ClassifyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClassifyResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.CalendarDate, s.loc)
	if err != nil {
		return attendance.ClassifyResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}
	session := attendance.SessionType(req.SessionType)

	status, delta, err := classify(session, date, req.ActualTime, s.policy)
	if err != nil {
		return attendance.ClassifyResponse{}, err
	}

	return attendance.ClassifyResponse{
		SessionType:  req.SessionType,
		Date:         req.CalendarDate,
		ActualTime:   req.ActualTime,
		ExpectedTime: s.policy.ExpectedTimes[session],
		DeltaMinutes: int(delta / time.Minute),
		Status:       string(status),
	}, nil
}

// mapEventToResponse converts an Event entity to EventResponse
func mapEventToResponse(e attendance.Event, loc *time.Location) attendance.EventResponse {
	return attendance.EventResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		SessionType: string(e.SessionType),
		Date:        e.CalendarDate.Format("2006-01-02"),
		ActualTime:  e.ActualTime,
		RecordedAt:  e.RecordedAt.In(loc).Format(time.RFC3339),
		Status:      string(e.Status),
		Department:  e.Department,
	}
}
