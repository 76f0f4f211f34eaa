package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, jwt.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Period errors
	case errors.Is(err, period.ErrInvalidPeriod), errors.Is(err, period.ErrUnknownPeriod):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrPolicyViolation):
		PolicyViolation(w, err.Error())
	case errors.Is(err, attendance.ErrDuplicateSession):
		Conflict(w, "Session already recorded for this date")
	case errors.Is(err, attendance.ErrUnknownSession), errors.Is(err, attendance.ErrInvalidClockTime):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
