package record

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
)

// RecordReader lists records whose created_at falls in [window.Start, window.End).
type RecordReader interface {
	ListRecords(ctx context.Context, window period.Window, limit, offset int) ([]Record, error)
	CountRecords(ctx context.Context, window period.Window) (int64, error)
}
