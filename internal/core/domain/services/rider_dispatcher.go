package services

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/rider"
)

var (
	// ErrRiderNotFound is returned by Dispatch when no candidate is available.
	ErrRiderNotFound = errors.New("no available rider found")

	// ErrRiderMismatch is returned when the rider passed in is not the one
	// referenced by the delivery.
	ErrRiderMismatch = errors.New("rider is not assigned to the delivery")
)

// RiderDispatcher keeps a delivery and its rider consistent.
//
// Every operation validates both aggregates and works on copies; only when
// both sides succeed are the results written back. A failed call leaves the
// delivery and the rider exactly as they were.
//
// Example usage:
//
//	dispatcher := services.NewRiderDispatcher()
//	chosen, err := dispatcher.Dispatch(d, riders, clock.Now())
//	if errors.Is(err, services.ErrRiderNotFound) {
//	    // leave the delivery pending for the next run
//	}
type RiderDispatcher struct{}

// NewRiderDispatcher creates a RiderDispatcher.
func NewRiderDispatcher() RiderDispatcher {
	return RiderDispatcher{}
}

// Assign moves d from Pending to Assigned with r, and r from Available to Busy.
func (RiderDispatcher) Assign(d *delivery.Delivery, r *rider.Rider, now time.Time) error {
	if err := errors.Join(d.Validate(), r.Validate()); err != nil {
		return err
	}
	if !r.IsAvailable() {
		return fmt.Errorf("%w: rider %s is %s", lifecycle.ErrRiderUnavailable, r.ID(), r.Status())
	}

	dc, rc := d.Clone(), r.Clone()
	if err := dc.Assign(rc.ID(), now); err != nil {
		return err
	}
	if err := rc.Occupy(now); err != nil {
		return err
	}

	*d, *r = *dc, *rc
	return nil
}

// Unassign returns an Assigned d to Pending and frees r.
func (RiderDispatcher) Unassign(d *delivery.Delivery, r *rider.Rider, now time.Time) error {
	if err := validatePair(d, r); err != nil {
		return err
	}

	dc, rc := d.Clone(), r.Clone()
	if err := dc.Unassign(now); err != nil {
		return err
	}
	if err := rc.Free(now); err != nil {
		return err
	}

	*d, *r = *dc, *rc
	return nil
}

// Complete finishes an InProgress d with proof, frees r and counts the delivery.
func (RiderDispatcher) Complete(d *delivery.Delivery, r *rider.Rider, proof delivery.Proof, now time.Time) error {
	if err := validatePair(d, r); err != nil {
		return err
	}

	dc, rc := d.Clone(), r.Clone()
	if err := dc.Complete(proof, now); err != nil {
		return err
	}
	if err := rc.Free(now); err != nil {
		return err
	}
	rc.RecordCompletedDelivery()

	*d, *r = *dc, *rc
	return nil
}

// Release ends d as Failed or Cancelled and frees r.
func (RiderDispatcher) Release(d *delivery.Delivery, r *rider.Rider, target delivery.Status, now time.Time) error {
	if err := validatePair(d, r); err != nil {
		return err
	}
	if target != delivery.Failed && target != delivery.Cancelled {
		return lifecycle.NewGuardFailedError(lifecycle.KindDelivery, d.Status(), target,
			"release ends a delivery as failed or cancelled")
	}

	dc, rc := d.Clone(), r.Clone()
	if err := dc.TransitionTo(target, now); err != nil {
		return err
	}
	if err := rc.Free(now); err != nil {
		return err
	}

	*d, *r = *dc, *rc
	return nil
}

// Dispatch assigns the best available rider to a pending delivery and returns it.
//
// Selection criteria:
//   - only available riders are considered
//   - the highest rating wins
//   - ties go to the rider with more completed deliveries, then to the first seen
func (dispatcher RiderDispatcher) Dispatch(d *delivery.Delivery, riders []*rider.Rider, now time.Time) (*rider.Rider, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Status() != delivery.Pending {
		return nil, lifecycle.NewInvalidTransitionError(lifecycle.KindDelivery, d.Status(), delivery.Assigned)
	}

	best, err := findBestRider(riders)
	if err != nil {
		return nil, err
	}

	if err = dispatcher.Assign(d, best, now); err != nil {
		return nil, err
	}
	return best, nil
}

func findBestRider(riders []*rider.Rider) (*rider.Rider, error) {
	var best *rider.Rider
	for _, r := range riders {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if !r.IsAvailable() {
			continue
		}
		if best == nil ||
			r.Rating() > best.Rating() ||
			(r.Rating() == best.Rating() && r.TotalDeliveries() > best.TotalDeliveries()) {
			best = r
		}
	}

	if best == nil {
		return nil, ErrRiderNotFound
	}
	return best, nil
}

func validatePair(d *delivery.Delivery, r *rider.Rider) error {
	if err := errors.Join(d.Validate(), r.Validate()); err != nil {
		return err
	}
	riderID := d.RiderID()
	if riderID == nil || !riderID.IsEqual(r.ID()) {
		return fmt.Errorf("%w: delivery %s, rider %s", ErrRiderMismatch, d.Number(), r.ID())
	}
	return nil
}
