package period

import "time"

// Kind identifies a named reporting period.
type Kind string

const (
	KindToday     Kind = "today"
	KindYesterday Kind = "yesterday"
	KindThisWeek  Kind = "this-week"
	KindThisMonth Kind = "this-month"
	KindThisYear  Kind = "this-year"
	KindLastNDays Kind = "last-n-days"
	KindCustom    Kind = "custom"
)

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Days returns the start of every calendar day covered by the window, oldest first.
// Both bounds are expected to sit on day boundaries of the same location.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.Start; d.Before(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Period is a period selector. Days is only read for KindLastNDays, StartRaw and EndRaw only
// for KindCustom.
type Period struct {
	Kind     Kind
	Days     int
	StartRaw string
	EndRaw   string
}

func Today() Period     { return Period{Kind: KindToday} }
func Yesterday() Period { return Period{Kind: KindYesterday} }
func ThisWeek() Period  { return Period{Kind: KindThisWeek} }
func ThisMonth() Period { return Period{Kind: KindThisMonth} }
func ThisYear() Period  { return Period{Kind: KindThisYear} }

// LastNDays selects n prior days plus today (n+1 calendar days).
func LastNDays(n int) Period { return Period{Kind: KindLastNDays, Days: n} }

// Custom selects [start, end] inclusive of the end date.
func Custom(start, end string) Period {
	return Period{Kind: KindCustom, StartRaw: start, EndRaw: end}
}
