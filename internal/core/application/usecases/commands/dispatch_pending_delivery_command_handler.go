package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"
)

var (
	ErrNoPendingDelivery = errors.New("no pending delivery found")
	ErrNoAvailableRiders = errors.New("no available riders found")
)

// DispatchPendingDeliveryCommandHandler matches the oldest pending delivery
// with the best rated available rider.
type DispatchPendingDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      kernel.Clock
	dispatcher services.RiderDispatcher
}

func NewDispatchPendingDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	clock kernel.Clock,
) DispatchPendingDeliveryCommandHandler {
	return DispatchPendingDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		dispatcher: services.NewRiderDispatcher(),
	}
}

// Handle returns ErrNoPendingDelivery or ErrNoAvailableRiders when there is nothing to match.
func (h DispatchPendingDeliveryCommandHandler) Handle(ctx context.Context, cmd DispatchPendingDeliveryCommand) error {
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

	d, err := deliveries.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingDelivery
	}
	if err != nil {
		return err
	}

	candidates, err := riders.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return ErrNoAvailableRiders
	}

	chosen, err := h.dispatcher.Dispatch(d, candidates, h.clock.Now())
	if err != nil {
		return err
	}

	if err = deliveries.Update(ctx, d); err != nil {
		return err
	}
	if err = riders.Update(ctx, chosen); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
