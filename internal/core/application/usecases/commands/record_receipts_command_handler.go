package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
)

// RecordReceiptsCommandHandler books receipts and then settles the purchase
// order status: partial while goods are outstanding, received once everything arrived.
type RecordReceiptsCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
	clock      kernel.Clock
}

func NewRecordReceiptsCommandHandler(uowFactory PurchaseOrderUoWFactory, clock kernel.Clock) RecordReceiptsCommandHandler {
	return RecordReceiptsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns lifecycle.ErrReceivedQuantityExceedsOrdered when any receipt
// overflows its item; in that case nothing is booked.
func (h RecordReceiptsCommandHandler) Handle(ctx context.Context, cmd RecordReceiptsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PurchaseOrderRepository()
	po, err := repo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = po.RecordReceipts(cmd.Receipts(), now); err != nil {
		return err
	}
	if _, err = po.SettleReceivingStatus(now); err != nil {
		return err
	}

	if err = repo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
