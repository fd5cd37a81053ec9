package ports

import (
	"context"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for deliveries.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get returns errs.ErrObjectNotFound when no delivery has the id.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetFirstPending returns the oldest pending delivery that has no rider,
	// or errs.ErrObjectNotFound when there is none.
	GetFirstPending(ctx context.Context) (*delivery.Delivery, error)
}
