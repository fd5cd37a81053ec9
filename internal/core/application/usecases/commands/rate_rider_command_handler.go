package commands

import (
	"context"
)

type RateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

func NewRateRiderCommandHandler(uowFactory RiderUoWFactory) RateRiderCommandHandler {
	return RateRiderCommandHandler{uowFactory: uowFactory}
}

// Handle stores the new rating. The rider's status is not touched.
func (h RateRiderCommandHandler) Handle(ctx context.Context, cmd RateRiderCommand) error {
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

	if err = r.Rate(cmd.Rating()); err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
