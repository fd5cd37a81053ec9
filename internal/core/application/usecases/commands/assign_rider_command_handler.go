package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/services"
)

// AssignRiderCommandHandler assigns a chosen rider to a pending delivery.
// Delivery and rider are saved in the same transaction.
//
// Example:
//
//	cmd, _ := NewAssignRiderCommand(deliveryID, riderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, lifecycle.ErrRiderUnavailable):
//	    // rider is busy or offline
//	case errors.Is(err, lifecycle.ErrInvalidTransition):
//	    // delivery is no longer pending
//	}
type AssignRiderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
	dispatcher services.RiderDispatcher
}

func NewAssignRiderCommandHandler(uowFactory DeliveryUoWFactory, clock kernel.Clock) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		dispatcher: services.NewRiderDispatcher(),
	}
}

func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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
	r, err := riders.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Assign(d, r, h.clock.Now()); err != nil {
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
