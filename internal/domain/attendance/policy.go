package attendance

import (
	"fmt"
	"time"
)

// Policy is the per-deployment workday configuration the classifier evaluates against.
type Policy struct {
	// ExpectedTimes maps each session to its expected time of day (HH:MM).
	ExpectedTimes map[SessionType]string

	ToleranceLate     time.Duration
	ToleranceEarly    time.Duration
	ToleranceOvertime time.Duration

	RestDay time.Weekday
	HalfDay time.Weekday
}

// DefaultPolicy is an 08:00-17:00 day with a 13:00-14:00 lunch, Sunday off and a Saturday half day.
func DefaultPolicy() Policy {
	return Policy{
		ExpectedTimes: map[SessionType]string{
			SessionCheckIn:  "08:00",
			SessionLunchOut: "13:00",
			SessionLunchIn:  "14:00",
			SessionCheckOut: "17:00",
		},
		ToleranceLate:     5 * time.Minute,
		ToleranceEarly:    5 * time.Minute,
		ToleranceOvertime: 30 * time.Minute,
		RestDay:           time.Sunday,
		HalfDay:           time.Saturday,
	}
}

// Validate checks that every session has a parseable expected time and tolerances are not negative.
func (p Policy) Validate() error {
	for _, s := range SessionTypes {
		raw, ok := p.ExpectedTimes[s]
		if !ok {
			return fmt.Errorf("policy: expected time for %s is missing", s)
		}
		if _, err := ParseClock(raw); err != nil {
			return fmt.Errorf("policy: expected time for %s: %w", s, err)
		}
	}
	if p.ToleranceLate < 0 || p.ToleranceEarly < 0 || p.ToleranceOvertime < 0 {
		return fmt.Errorf("policy: tolerances must not be negative")
	}
	if p.RestDay == p.HalfDay {
		return fmt.Errorf("policy: rest day and half day must differ")
	}
	return nil
}

// IsWorkingDay reports whether any session is permitted on d.
func (p Policy) IsWorkingDay(d time.Time) bool {
	return d.Weekday() != p.RestDay
}

// ParseClock parses HH:MM into minutes since midnight.
func ParseClock(raw string) (int, error) {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q must be HH:MM", ErrInvalidClockTime, raw)
	}
	return t.Hour()*60 + t.Minute(), nil
}
