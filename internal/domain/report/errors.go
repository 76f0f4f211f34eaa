package report

import (
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
)

// MaxTrendDays is the longest trend: today plus period.MaxLastNDays prior days.
const MaxTrendDays = period.MaxLastNDays + 1

var (
	ErrInvalidPerformancePeriod = fmt.Errorf("%w: period must be one of: week, month, year", period.ErrInvalidPeriod)
	ErrInvalidTrendLength       = fmt.Errorf("%w: days must be between 1 and %d", period.ErrInvalidPeriod, MaxTrendDays)
)
