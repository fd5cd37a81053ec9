package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
)

type MarkPurchaseOrderReceivedCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
	clock      kernel.Clock
}

func NewMarkPurchaseOrderReceivedCommandHandler(
	uowFactory PurchaseOrderUoWFactory,
	clock kernel.Clock,
) MarkPurchaseOrderReceivedCommandHandler {
	return MarkPurchaseOrderReceivedCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h MarkPurchaseOrderReceivedCommandHandler) Handle(ctx context.Context, cmd MarkPurchaseOrderReceivedCommand) error {
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

	if err = po.MarkFullyReceived(h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, po); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
