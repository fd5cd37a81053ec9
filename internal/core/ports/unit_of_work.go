package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it share the transaction opened by Begin. Aggregates saved through them are
// tracked, and their recorded status changes are published once Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction and then publishes the tracked events.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Without an open transaction it returns an error.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PurchaseOrderRepository() PurchaseOrderRepository
	DeliveryRepository() DeliveryRepository
	RiderRepository() RiderRepository
}
