package report

import "github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"

// Tally counts classified sessions. Add and Merge are associative and commutative, so any
// partition of the input folds to the same result.
type Tally struct {
	OnTime   int
	Late     int
	Early    int
	Overtime int
}

// Add counts one status. Unknown statuses are ignored.
func (t Tally) Add(s attendance.Status) Tally {
	switch s {
	case attendance.StatusOnTime:
		t.OnTime++
	case attendance.StatusLate:
		t.Late++
	case attendance.StatusEarly:
		t.Early++
	case attendance.StatusOvertime:
		t.Overtime++
	}
	return t
}

func (t Tally) Merge(o Tally) Tally {
	return Tally{
		OnTime:   t.OnTime + o.OnTime,
		Late:     t.Late + o.Late,
		Early:    t.Early + o.Early,
		Overtime: t.Overtime + o.Overtime,
	}
}

func (t Tally) Total() int {
	return t.OnTime + t.Late + t.Early + t.Overtime
}

// Rate is the punctuality rate on-time / total; zero when there are no sessions.
func (t Tally) Rate() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t.OnTime) / float64(total)
}
