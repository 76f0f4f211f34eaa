package period

import "time"

// StartOfDay returns 00:00:00 of the same day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday 00:00 of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	// Go's weekday: Sunday=0 ... Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(wd - 1))
}

// DayIn places the calendar date carried by d (year, month, day) at midnight in loc.
// Dates scanned from a DATE column arrive as UTC midnight.
func DayIn(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateKey formats the calendar date of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}
