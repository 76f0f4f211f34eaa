package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultLastNDays is used when last-n-days is requested without a day count.
	DefaultLastNDays = 7
	// MaxLastNDays bounds last-n-days to ten years back.
	MaxLastNDays = 3660
)

// DateFilter describes a resolved window for callers that render it directly.
type DateFilter struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	DateLabel string    `json:"date_label"`
	StartDate string    `json:"start_date"` // YYYY-MM-DD
	EndDate   string    `json:"end_date"`   // YYYY-MM-DD, inclusive last day
	Display   string    `json:"display"`
	Timezone  string    `json:"timezone"`
}

// Resolution is a window together with its descriptor.
type Resolution struct {
	Window     Window     `json:"-"`
	DateFilter DateFilter `json:"date_filter"`
}

var aliases = map[string]Kind{
	"today":       KindToday,
	"yesterday":   KindYesterday,
	"this-week":   KindThisWeek,
	"thisweek":    KindThisWeek,
	"week":        KindThisWeek,
	"this-month":  KindThisMonth,
	"thismonth":   KindThisMonth,
	"month":       KindThisMonth,
	"this-year":   KindThisYear,
	"thisyear":    KindThisYear,
	"year":        KindThisYear,
	"last-n-days": KindLastNDays,
	"lastndays":   KindLastNDays,
	"custom":      KindCustom,
}

// Parse builds a Period from inbound primitive values.
func Parse(name, days, start, end string) (Period, error) {
	kind, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Period{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, name)
	}

	switch kind {
	case KindLastNDays:
		n := DefaultLastNDays
		if strings.TrimSpace(days) != "" {
			parsed, err := strconv.Atoi(strings.TrimSpace(days))
			if err != nil {
				return Period{}, fmt.Errorf("%w: days must be a number", ErrInvalidPeriod)
			}
			n = parsed
		}
		if n < 0 || n > MaxLastNDays {
			return Period{}, fmt.Errorf("%w: days must be between 0 and %d", ErrInvalidPeriod, MaxLastNDays)
		}
		return LastNDays(n), nil
	case KindCustom:
		return Custom(start, end), nil
	default:
		return Period{Kind: kind}, nil
	}
}

// Label returns the human readable name used in DateFilter.
func (p Period) Label() string {
	switch p.Kind {
	case KindToday:
		return "Today"
	case KindYesterday:
		return "Yesterday"
	case KindThisWeek:
		return "This Week"
	case KindThisMonth:
		return "This Month"
	case KindThisYear:
		return "This Year"
	case KindLastNDays:
		return fmt.Sprintf("Last %d Days", p.Days)
	case KindCustom:
		return "Custom Date Range"
	}
	return string(p.Kind)
}
