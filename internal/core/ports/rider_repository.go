package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for riders.
type RiderRepository interface {
	Add(ctx context.Context, aggregate *rider.Rider) error
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get returns errs.ErrObjectNotFound when no rider has the id.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAllAvailable returns every rider whose status is available.
	GetAllAvailable(ctx context.Context) ([]*rider.Rider, error)
}
