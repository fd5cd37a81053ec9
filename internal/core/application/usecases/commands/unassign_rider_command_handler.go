package commands

import (
	"context"
	"fmt"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/services"
)

type UnassignRiderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
	dispatcher services.RiderDispatcher
}

func NewUnassignRiderCommandHandler(uowFactory DeliveryUoWFactory, clock kernel.Clock) UnassignRiderCommandHandler {
	return UnassignRiderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		dispatcher: services.NewRiderDispatcher(),
	}
}

// Handle frees the rider and moves the delivery back to pending in one transaction.
func (h UnassignRiderCommandHandler) Handle(ctx context.Context, cmd UnassignRiderCommand) error {
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
		return fmt.Errorf("%w: delivery %s has no rider to unassign", lifecycle.ErrMissingRiderAssignment, d.Number())
	}
	if d.Status() != delivery.Assigned {
		return lifecycle.NewInvalidTransitionError(lifecycle.KindDelivery, d.Status(), delivery.Pending)
	}

	r, err := riders.Get(ctx, *riderID)
	if err != nil {
		return err
	}

	if err = h.dispatcher.Unassign(d, r, h.clock.Now()); err != nil {
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
