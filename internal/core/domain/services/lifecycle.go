package services

import (
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/core/domain/model/rider"
	"backoffice/internal/pkg/errs"
)

// Lifecycle answers status questions for any entity kind by delegating to
// the aggregate packages.
//
// Example usage:
//
//	lc := services.NewLifecycle()
//	if lc.CanTransition(lifecycle.KindOrder, "pending", "processing") {
//	    updated, err := lc.ApplyTransition(lifecycle.KindOrder, o, "processing", clock.Now())
//	    ...
//	}
type Lifecycle struct{}

// NewLifecycle creates a Lifecycle service.
func NewLifecycle() Lifecycle {
	return Lifecycle{}
}

// CanTransition reports whether the table of kind has the edge current -> target.
// Quantity and rider guards need the entity and are checked by ApplyTransition.
// Unknown kinds or statuses yield false.
func (Lifecycle) CanTransition(kind lifecycle.Kind, current, target string) bool {
	switch kind { //nolint:exhaustive // projected-only kinds have no transitions
	case lifecycle.KindOrder:
		from, to, err := parsePair(order.ParseStatus, current, target)
		return err == nil && from.CanTransitionTo(to)
	case lifecycle.KindPurchaseOrder:
		from, to, err := parsePair(purchase.ParseStatus, current, target)
		return err == nil && from.CanTransitionTo(to)
	case lifecycle.KindDelivery:
		from, to, err := parsePair(delivery.ParseStatus, current, target)
		return err == nil && from.CanTransitionTo(to)
	default:
		return false
	}
}

// ApplyTransition returns a transitioned copy of entity. The argument is never
// mutated, whether the transition succeeds or not.
func (Lifecycle) ApplyTransition(
	kind lifecycle.Kind,
	entity lifecycle.Entity,
	target string,
	now time.Time,
) (lifecycle.Entity, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if !kind.HasTransitions() {
		return nil, fmt.Errorf("%w: %s has no transition table", lifecycle.ErrUnknownKind, kind)
	}
	if entity == nil {
		return nil, errs.NewValueIsRequiredError("entity")
	}
	if entity.Kind() != kind {
		return nil, errs.NewValueIsInvalidErrorWithCause("entity",
			fmt.Errorf("entity is a %s, not a %s", entity.Kind(), kind))
	}

	switch e := entity.(type) {
	case *order.Order:
		status, err := order.ParseStatus(target)
		if err != nil {
			return nil, err
		}
		updated := e.Clone()
		if err = updated.TransitionTo(status, now); err != nil {
			return nil, err
		}
		return updated, nil
	case *purchase.PurchaseOrder:
		status, err := purchase.ParseStatus(target)
		if err != nil {
			return nil, err
		}
		updated := e.Clone()
		if err = updated.TransitionTo(status, now); err != nil {
			return nil, err
		}
		return updated, nil
	case *delivery.Delivery:
		status, err := delivery.ParseStatus(target)
		if err != nil {
			return nil, err
		}
		updated := e.Clone()
		if err = updated.TransitionTo(status, now); err != nil {
			return nil, err
		}
		return updated, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("entity", fmt.Errorf("unsupported entity type %T", entity))
	}
}

// ProjectDisplay maps a status of kind to its badge projection. Unknown
// statuses fail with lifecycle.ErrUnknownStatus rather than falling back.
func (Lifecycle) ProjectDisplay(kind lifecycle.Kind, status string) (lifecycle.Display, error) {
	switch kind {
	case lifecycle.KindOrder:
		return project(order.ParseStatus, status)
	case lifecycle.KindPurchaseOrder:
		return project(purchase.ParseStatus, status)
	case lifecycle.KindDelivery:
		return project(delivery.ParseStatus, status)
	case lifecycle.KindRider:
		return project(rider.ParseStatus, status)
	case lifecycle.KindPayment:
		return project(order.ParsePaymentStatus, status)
	case lifecycle.KindUnknown:
		return lifecycle.Display{}, kind.Validate()
	}
	return lifecycle.Display{}, kind.Validate()
}

// CanAssignRider reports whether r may take a delivery: only available riders can.
func (Lifecycle) CanAssignRider(r *rider.Rider) bool {
	return r.Validate() == nil && r.IsAvailable()
}

type displayable interface {
	Display() (lifecycle.Display, error)
}

func project[S displayable](parse func(string) (S, error), status string) (lifecycle.Display, error) {
	s, err := parse(status)
	if err != nil {
		return lifecycle.Display{}, err
	}
	return s.Display()
}

func parsePair[S any](parse func(string) (S, error), current, target string) (S, S, error) {
	from, err := parse(current)
	if err != nil {
		return from, from, err
	}
	to, err := parse(target)
	return from, to, err
}
