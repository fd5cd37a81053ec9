package ports

import (
	"context"

	"backoffice/internal/core/domain/model/lifecycle"
)

// EventPublisher delivers status-change events to the outside world after a
// transaction has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...lifecycle.StatusChanged) error
}
