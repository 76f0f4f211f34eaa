package attendance

import (
	"time"
)

type SessionType string

const (
	SessionCheckIn  SessionType = "check-in"
	SessionLunchOut SessionType = "lunch-out"
	SessionLunchIn  SessionType = "lunch-in"
	SessionCheckOut SessionType = "check-out"
)

// SessionTypes lists the four checkpoints in workday order.
var SessionTypes = []SessionType{SessionCheckIn, SessionLunchOut, SessionLunchIn, SessionCheckOut}

func (s SessionType) IsValid() bool {
	switch s {
	case SessionCheckIn, SessionLunchOut, SessionLunchIn, SessionCheckOut:
		return true
	}
	return false
}

// IsLunch reports whether the session belongs to the lunch break.
func (s SessionType) IsLunch() bool {
	return s == SessionLunchOut || s == SessionLunchIn
}

type Status string

const (
	StatusOnTime   Status = "on-time"
	StatusLate     Status = "late"
	StatusEarly    Status = "early"
	StatusOvertime Status = "overtime"
)

// Event is one recorded swipe. It is immutable once stored; Status is computed at
// creation and never recalculated.
type Event struct {
	ID           string
	EmployeeID   string
	SessionType  SessionType
	CalendarDate time.Time // business day, only year/month/day are meaningful
	RecordedAt   time.Time
	ActualTime   string // HH:MM
	Status       Status
	Department   string

	// DTO
	EmployeeName *string
}
