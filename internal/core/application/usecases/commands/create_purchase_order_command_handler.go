package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
)

// CreatePurchaseOrderCommandHandler persists a new Draft purchase order.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
	clock      kernel.Clock
}

func NewCreatePurchaseOrderCommandHandler(
	uowFactory PurchaseOrderUoWFactory,
	clock kernel.Clock,
) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreatePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	po, err := purchase.NewPurchaseOrder(cmd.PurchaseOrderID(), cmd.Details(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PurchaseOrderRepository().Add(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
