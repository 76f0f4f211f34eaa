package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
)

type ClassifierImpl struct{}

func NewClassifier() attendance.Classifier {
	return ClassifierImpl{}
}

// Classify implements attendance.Classifier.
func (ClassifierImpl) Classify(session attendance.SessionType, calendarDate time.Time, actualTime string, policy attendance.Policy) (attendance.Status, error) {
	status, _, err := classify(session, calendarDate, actualTime, policy)
	return status, err
}

// classify returns the status together with the signed delta from the expected time.
func classify(session attendance.SessionType, calendarDate time.Time, actualTime string, policy attendance.Policy) (attendance.Status, time.Duration, error) {
	if !session.IsValid() {
		return "", 0, fmt.Errorf("%w: %q", attendance.ErrUnknownSession, session)
	}

	if err := checkDayPermits(session, calendarDate, policy); err != nil {
		return "", 0, err
	}

	expectedRaw, ok := policy.ExpectedTimes[session]
	if !ok {
		return "", 0, fmt.Errorf("no expected time configured for %s", session)
	}
	expected, err := attendance.ParseClock(expectedRaw)
	if err != nil {
		return "", 0, err
	}
	actual, err := attendance.ParseClock(actualTime)
	if err != nil {
		return "", 0, err
	}

	delta := time.Duration(actual-expected) * time.Minute

	// |delta| == tolerance stays on-time
	switch session {
	case attendance.SessionCheckOut:
		switch {
		case delta > policy.ToleranceOvertime:
			return attendance.StatusOvertime, delta, nil
		case delta < -policy.ToleranceEarly:
			return attendance.StatusEarly, delta, nil
		}
	default:
		switch {
		case delta > policy.ToleranceLate:
			return attendance.StatusLate, delta, nil
		case delta < -policy.ToleranceEarly:
			return attendance.StatusEarly, delta, nil
		}
	}
	return attendance.StatusOnTime, delta, nil
}

func checkDayPermits(session attendance.SessionType, calendarDate time.Time, policy attendance.Policy) error {
	day := calendarDate.Weekday()
	if day == policy.RestDay {
		return fmt.Errorf("%w: no sessions are allowed on %s", attendance.ErrPolicyViolation, day)
	}
	if day == policy.HalfDay && session.IsLunch() {
		return fmt.Errorf("%w: %s is not allowed on %s", attendance.ErrPolicyViolation, session, day)
	}
	return nil
}
