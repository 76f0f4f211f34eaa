package attendance

import "errors"

// Attendance domain errors
var (
	// ErrPolicyViolation rejects a session that is not permitted on its calendar date.
	// It is a business-rule rejection; the event must not be recorded.
	ErrPolicyViolation = errors.New("session not permitted")

	ErrUnknownSession   = errors.New("unknown session type")
	ErrInvalidClockTime = errors.New("invalid clock time")
	ErrDuplicateSession = errors.New("session already recorded for this date")
)
