package commands

import (
	"context"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/services"
)

// CompleteDeliveryCommandHandler completes a delivery, frees its rider and
// counts the delivery on the rider's record.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
	dispatcher services.RiderDispatcher
}

func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock kernel.Clock) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		dispatcher: services.NewRiderDispatcher(),
	}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	deliveries := uow.DeliveryRepository()
	riders := uow.RiderRepository()

	d, err := deliveries.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	riderID := d.RiderID()
	if riderID == nil {
		return fmt.Errorf("%w: delivery %s cannot be completed", lifecycle.ErrMissingRiderAssignment, d.Number())
	}

	r, err := riders.Get(ctx, *riderID)
	if err != nil {
		return err
	}

	if err = h.dispatcher.Complete(d, r, cmd.Proof(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveries.Update(ctx, d); err != nil {
		return err
	}
	if err = riders.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
