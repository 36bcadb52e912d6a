package ports

import (
	"context"

	"github.com/woodline/warehouse-system/internal/core/domain"
)

// ActivityRecorder accepts audit events from the mutating services. Recording
// is fire-and-forget: the dispatcher persists asynchronously.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// ActivityRepository persists audit events.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}
