package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
)

// PurchaseOrderRepository defines the persistence contract for purchase orders.
type PurchaseOrderRepository interface {
	// Add persists a new purchase order with its line items.
	Add(ctx context.Context, aggregate *purchase.PurchaseOrder) error

	// Update persists status, timestamps and per-item received quantities.
	Update(ctx context.Context, aggregate *purchase.PurchaseOrder) error

	// Get retrieves a purchase order with its items.
	// Returns errs.ErrObjectNotFound when no purchase order has the id.
	Get(ctx context.Context, id kernel.UUID) (*purchase.PurchaseOrder, error)
}
