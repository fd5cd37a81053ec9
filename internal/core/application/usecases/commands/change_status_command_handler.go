package commands

import (
	"context"
	"fmt"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/core/domain/services"
)

// ChangeStatusCommandHandler applies a transition through the lifecycle service
// and saves the transitioned copy. Deliveries that carry a rider go through the
// rider dispatcher so the rider's availability follows the delivery.
type ChangeStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
	lifecycle  services.Lifecycle
	dispatcher services.RiderDispatcher
}

func NewChangeStatusCommandHandler(uowFactory UoWFactory, clock kernel.Clock) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		lifecycle:  services.NewLifecycle(),
		dispatcher: services.NewRiderDispatcher(),
	}
}

func (h ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) error {
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

	var err error
	switch cmd.Kind() {
	case lifecycle.KindOrder:
		err = h.changeOrder(ctx, uow, cmd)
	case lifecycle.KindPurchaseOrder:
		err = h.changePurchaseOrder(ctx, uow, cmd)
	case lifecycle.KindDelivery:
		err = h.changeDelivery(ctx, uow, cmd)
	default:
		err = fmt.Errorf("%w: %s", lifecycle.ErrUnknownKind, cmd.Kind())
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ChangeStatusCommandHandler) changeOrder(ctx context.Context, uow UoW, cmd ChangeStatusCommand) error {
	repo := uow.OrderRepository()
	current, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	updated, err := h.lifecycle.ApplyTransition(lifecycle.KindOrder, current, cmd.Target(), h.clock.Now())
	if err != nil {
		return err
	}

	return repo.Update(ctx, updated.(*order.Order))
}

func (h ChangeStatusCommandHandler) changePurchaseOrder(ctx context.Context, uow UoW, cmd ChangeStatusCommand) error {
	repo := uow.PurchaseOrderRepository()
	current, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	updated, err := h.lifecycle.ApplyTransition(lifecycle.KindPurchaseOrder, current, cmd.Target(), h.clock.Now())
	if err != nil {
		return err
	}

	return repo.Update(ctx, updated.(*purchase.PurchaseOrder))
}

func (h ChangeStatusCommandHandler) changeDelivery(ctx context.Context, uow UoW, cmd ChangeStatusCommand) error {
	deliveries := uow.DeliveryRepository()
	current, err := deliveries.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	target, err := delivery.ParseStatus(cmd.Target())
	if err != nil {
		return err
	}

	riderID := current.RiderID()
	if riderID == nil || !affectsRider(target) {
		updated, err := h.lifecycle.ApplyTransition(lifecycle.KindDelivery, current, cmd.Target(), now)
		if err != nil {
			return err
		}
		return deliveries.Update(ctx, updated.(*delivery.Delivery))
	}

	riders := uow.RiderRepository()
	r, err := riders.Get(ctx, *riderID)
	if err != nil {
		return err
	}

	switch target {
	case delivery.Assigned:
		err = h.dispatcher.Assign(current, r, now)
	case delivery.Completed:
		err = h.dispatcher.Complete(current, r, delivery.Proof{}, now)
	default:
		err = h.dispatcher.Release(current, r, target, now)
	}
	if err != nil {
		return err
	}

	if err = deliveries.Update(ctx, current); err != nil {
		return err
	}
	return riders.Update(ctx, r)
}

func affectsRider(target delivery.Status) bool {
	switch target {
	case delivery.Assigned, delivery.Completed, delivery.Failed, delivery.Cancelled:
		return true
	default:
		return false
	}
}
