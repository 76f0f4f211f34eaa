package attendance

import (
	"context"
	"time"
)

// Classifier evaluates a single session against the workday policy. Implementations are pure.
type Classifier interface {
	Classify(session SessionType, calendarDate time.Time, actualTime string, policy Policy) (Status, error)
}

// AttendanceService captures swipes. Status is computed here and never supplied by callers.
type AttendanceService interface {
	// RecordEvent classifies and stores one swipe
	RecordEvent(ctx context.Context, req RecordEventRequest) (EventResponse, error)

	// Preview classifies a swipe without storing it
	Preview(ctx context.Context, req ClassifyRequest) (ClassifyResponse, error)
}
