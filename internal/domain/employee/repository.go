package employee

import "context"

// EmployeeReader is the read-only employee lookup used by event capture and rosters.
type EmployeeReader interface {
	// GetByID returns ErrEmployeeNotFound when no employee matches
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns active employees, optionally limited to one department
	ListActive(ctx context.Context, department *string) ([]Employee, error)
}
