package attendance

import (
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/validator"
)

type RecordEventRequest struct {
	EmployeeID   string `json:"employee_id"`
	SessionType  string `json:"session_type"`
	CalendarDate string `json:"date"`        // YYYY-MM-DD
	ActualTime   string `json:"actual_time"` // HH:MM
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	errs = append(errs, validateSession(r.SessionType, r.CalendarDate, r.ActualTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ClassifyRequest previews a status without recording anything.
type ClassifyRequest struct {
	SessionType  string `json:"session_type"`
	CalendarDate string `json:"date"`
	ActualTime   string `json:"actual_time"`
}

func (r *ClassifyRequest) Validate() error {
	errs := validateSession(r.SessionType, r.CalendarDate, r.ActualTime)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateSession(session, date, actual string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !SessionType(session).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "session_type",
			Message: "session_type must be one of: check-in, lunch-out, lunch-in, check-out",
		})
	}

	if _, valid := validator.IsValidDate(date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClock(actual) {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_time",
			Message: "actual_time must be in HH:MM format",
		})
	}
	return errs
}

type EventResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	SessionType string `json:"session_type"`
	Date        string `json:"date"`
	ActualTime  string `json:"actual_time"`
	RecordedAt  string `json:"recorded_at"`
	Status      string `json:"status"`
	Department  string `json:"department"`
}

type ClassifyResponse struct {
	SessionType  string `json:"session_type"`
	Date         string `json:"date"`
	ActualTime   string `json:"actual_time"`
	ExpectedTime string `json:"expected_time"`
	DeltaMinutes int    `json:"delta_minutes"`
	Status       string `json:"status"`
}
