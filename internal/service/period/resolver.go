package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/jonboulle/clockwork"
)

const (
	dateLayout    = "2006-01-02"
	displayLayout = "02 Jan 2006"
)

type ResolverImpl struct {
	loc   *time.Location
	clock clockwork.Clock
}

func NewResolver(loc *time.Location, clock clockwork.Clock) period.Resolver {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ResolverImpl{loc: loc, clock: clock}
}

// Location implements period.Resolver.
func (r *ResolverImpl) Location() *time.Location {
	return r.loc
}

// Resolve implements period.Resolver.
func (r *ResolverImpl) Resolve(p period.Period) (period.Window, error) {
	return r.ResolveAt(p, r.clock.Now())
}

// ResolveAt implements period.Resolver.
func (r *ResolverImpl) ResolveAt(p period.Period, ref time.Time) (period.Window, error) {
	today := StartOfDay(ref.In(r.loc))

	switch p.Kind {
	case period.KindToday:
		return period.Window{Start: today, End: today.AddDate(0, 0, 1)}, nil
	case period.KindYesterday:
		return period.Window{Start: today.AddDate(0, 0, -1), End: today}, nil
	case period.KindThisWeek:
		monday := StartOfWeek(today)
		return period.Window{Start: monday, End: monday.AddDate(0, 0, 7)}, nil
	case period.KindThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, r.loc)
		return period.Window{Start: first, End: first.AddDate(0, 1, 0)}, nil
	case period.KindThisYear:
		jan1 := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, r.loc)
		return period.Window{Start: jan1, End: jan1.AddDate(1, 0, 0)}, nil
	case period.KindLastNDays:
		if p.Days < 0 || p.Days > period.MaxLastNDays {
			return period.Window{}, fmt.Errorf("%w: days must be between 0 and %d", period.ErrInvalidPeriod, period.MaxLastNDays)
		}
		return period.Window{Start: today.AddDate(0, 0, -p.Days), End: today.AddDate(0, 0, 1)}, nil
	case period.KindCustom:
		return r.resolveCustom(p.StartRaw, p.EndRaw)
	}

	return period.Window{}, fmt.Errorf("%w: %q", period.ErrUnknownPeriod, p.Kind)
}

func (r *ResolverImpl) resolveCustom(startRaw, endRaw string) (period.Window, error) {
	start, err := r.parseBound(startRaw)
	if err != nil {
		return period.Window{}, fmt.Errorf("%w: start date: %v", period.ErrInvalidPeriod, err)
	}
	end, err := r.parseBound(endRaw)
	if err != nil {
		return period.Window{}, fmt.Errorf("%w: end date: %v", period.ErrInvalidPeriod, err)
	}

	// the supplied end date is inclusive
	end = end.AddDate(0, 0, 1)

	if !end.After(start) {
		return period.Window{}, fmt.Errorf("%w: end date must not be before start date", period.ErrInvalidPeriod)
	}
	return period.Window{Start: start, End: end}, nil
}

// parseBound accepts epoch milliseconds, a YYYY-MM-DD business date, or an RFC3339 instant.
func (r *ResolverImpl) parseBound(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("value is required")
	}

	var (
		t   time.Time
		err error
	)
	if ms, convErr := strconv.ParseInt(raw, 10, 64); convErr == nil {
		t = time.UnixMilli(ms).In(r.loc)
	} else if t, err = time.ParseInLocation(dateLayout, raw, r.loc); err != nil {
		if t, err = time.Parse(time.RFC3339, raw); err != nil {
			return time.Time{}, fmt.Errorf("%q is neither an epoch nor a date", raw)
		}
		t = t.In(r.loc)
	}

	// the end bound is advanced a day and must stay a JSON-encodable year
	if t.Year() < 1 || t.Year() > 9998 {
		return time.Time{}, fmt.Errorf("%q is outside the supported years 1-9998", raw)
	}
	return t, nil
}

// Describe implements period.Resolver.
func (r *ResolverImpl) Describe(p period.Period) (period.Resolution, error) {
	w, err := r.Resolve(p)
	if err != nil {
		return period.Resolution{}, err
	}
	return period.Resolution{Window: w, DateFilter: r.dateFilter(w, p.Label())}, nil
}

// DescribeWindow implements period.Resolver.
func (r *ResolverImpl) DescribeWindow(w period.Window) period.DateFilter {
	return r.dateFilter(w, period.Period{Kind: period.KindCustom}.Label())
}

// Day implements period.Resolver.
func (r *ResolverImpl) Day(date string) (period.Window, error) {
	if strings.TrimSpace(date) == "" {
		return r.Resolve(period.Today())
	}
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), r.loc)
	if err != nil {
		return period.Window{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format", period.ErrInvalidPeriod)
	}
	return period.Window{Start: d, End: d.AddDate(0, 0, 1)}, nil
}

func (r *ResolverImpl) dateFilter(w period.Window, label string) period.DateFilter {
	first := w.Start.In(r.loc)
	last := w.End.In(r.loc).Add(-time.Nanosecond)

	display := first.Format(displayLayout)
	if !SameDay(first, last) {
		display += " - " + last.Format(displayLayout)
	}

	return period.DateFilter{
		Start:     w.Start,
		End:       w.End,
		DateLabel: label,
		StartDate: first.Format(dateLayout),
		EndDate:   last.Format(dateLayout),
		Display:   display,
		Timezone:  r.loc.String(),
	}
}
