package period

import "time"

// Resolver turns period selectors into business-timezone windows.
type Resolver interface {
	// Resolve resolves p relative to the current instant.
	Resolve(p Period) (Window, error)

	// ResolveAt resolves p relative to ref.
	ResolveAt(p Period, ref time.Time) (Window, error)

	// Describe resolves p and builds its DateFilter.
	Describe(p Period) (Resolution, error)

	// DescribeWindow builds the DateFilter of an arbitrary window, labelled as a custom range.
	DescribeWindow(w Window) DateFilter

	// Day returns the one-day window of a YYYY-MM-DD date, or of today when date is empty.
	Day(date string) (Window, error)

	// Location returns the business timezone.
	Location() *time.Location
}
