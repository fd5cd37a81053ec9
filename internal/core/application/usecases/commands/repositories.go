// Package commands contains the write use cases of the back office.
// Every handler validates its command, opens one unit of work, loads the
// aggregates it needs, lets the domain decide, saves and commits.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// OrderUoW manages transactions for sales-order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PurchaseOrderUoW manages transactions for purchase-order-only operations.
	PurchaseOrderUoW interface {
		TxManager
		PurchaseOrderRepoFactory
	}

	PurchaseOrderUoWFactory interface {
		Create() PurchaseOrderUoW
	}

	// RiderUoW manages transactions for rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// DeliveryUoW covers operations that keep a delivery, its rider and its
	// order consistent in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DeliveryRepository().Get(ctx, deliveryID)
	//   r, err := uow.RiderRepository().Get(ctx, riderID)
	//   // ... dispatcher.Assign(d, r, now), update both
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		RiderRepoFactory
		OrderRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// UoW exposes every repository; used by operations addressed by entity kind.
	UoW interface {
		TxManager
		OrderRepoFactory
		PurchaseOrderRepoFactory
		DeliveryRepoFactory
		RiderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
