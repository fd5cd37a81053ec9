package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/rider"
)

type UpdateRiderAvailabilityCommandHandler struct {
	uowFactory RiderUoWFactory
	clock      kernel.Clock
}

func NewUpdateRiderAvailabilityCommandHandler(
	uowFactory RiderUoWFactory,
	clock kernel.Clock,
) UpdateRiderAvailabilityCommandHandler {
	return UpdateRiderAvailabilityCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns lifecycle.ErrInvalidTransition for a busy rider going offline.
func (h UpdateRiderAvailabilityCommandHandler) Handle(ctx context.Context, cmd UpdateRiderAvailabilityCommand) error {
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

	repo := uow.RiderRepository()
	r, err := repo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if cmd.Status() == rider.Offline {
		err = r.GoOffline(now)
	} else {
		err = r.GoOnline(now)
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
