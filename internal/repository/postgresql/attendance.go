package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceEventRepository struct {
	db  *database.DB
	loc *time.Location
}

// ListEvents implements attendance.EventReader. The window is converted to business dates, so
// [Start, End) selects calendar_date >= start date AND calendar_date < end date.
func (a *attendanceEventRepository) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	var (
		conditions []string
		args       []interface{}
	)
	args = append(args, businessDate(filter.Window.Start, a.loc), businessDate(filter.Window.End, a.loc))
	conditions = append(conditions, "ae.calendar_date >= $1", "ae.calendar_date < $2")

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("ae.employee_id = $%d", len(args)))
	}
	if filter.Department != nil {
		args = append(args, *filter.Department)
		conditions = append(conditions, fmt.Sprintf("ae.department = $%d", len(args)))
	}

	query := `
		SELECT ae.id, ae.employee_id, ae.session_type, ae.calendar_date, ae.recorded_at,
			   ae.actual_time, ae.status, ae.department, e.full_name
		FROM attendance_events ae
		LEFT JOIN employees e ON e.id = ae.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY ae.calendar_date, ae.recorded_at, ae.id
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var e attendance.Event
		if err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.SessionType, &e.CalendarDate, &e.RecordedAt,
			&e.ActualTime, &e.Status, &e.Department, &e.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}

	return events, nil
}

// Create implements attendance.EventRepository.
func (a *attendanceEventRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_events (
			id, employee_id, session_type, calendar_date, recorded_at, actual_time, status, department
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING recorded_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.SessionType,
		businessDate(event.CalendarDate, a.loc),
		event.RecordedAt,
		event.ActualTime,
		event.Status,
		event.Department,
	).Scan(&event.RecordedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return attendance.Event{}, attendance.ErrDuplicateSession
		}
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// ExistsForSession implements attendance.EventRepository.
func (a *attendanceEventRepository) ExistsForSession(ctx context.Context, employeeID string, date string, session attendance.SessionType) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_events
			WHERE employee_id = $1 AND calendar_date = $2::date AND session_type = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date, session).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance session: %w", err)
	}
	return exists, nil
}

// businessDate renders t as the YYYY-MM-DD of its business day.
func businessDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

func NewAttendanceEventRepository(db *database.DB, loc *time.Location) attendance.EventRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &attendanceEventRepository{db: db, loc: loc}
}
