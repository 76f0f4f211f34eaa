package record

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
)

type RecordQueryService interface {
	Query(ctx context.Context, window period.Window, pagination Pagination) (Page, error)
	QueryPeriod(ctx context.Context, p period.Period, pagination Pagination) (Page, error)
}
