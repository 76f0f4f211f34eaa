package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
)

// EventFilter selects events whose calendar date falls in Window.
type EventFilter struct {
	Window     period.Window
	EmployeeID *string
	Department *string
}

// EventReader is the read-only range query the aggregation core depends on.
type EventReader interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]Event, error)
}

// EventRepository adds the single write used by event capture.
type EventRepository interface {
	EventReader

	// Create inserts a new immutable event
	Create(ctx context.Context, event Event) (Event, error)

	// ExistsForSession reports whether the employee already has the session on that date
	ExistsForSession(ctx context.Context, employeeID string, date string, session SessionType) (bool, error)
}

// Transactor runs fn inside one storage transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
