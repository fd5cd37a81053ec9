package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
// through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Details carries the descriptive fields of a delivery.
type Details struct {
	Number        string
	OrderID       kernel.UUID
	ScheduledDate *time.Time
	Notes         string
}

// State is the persisted lifecycle state of a delivery.
type State struct {
	Status             Status
	RiderID            *kernel.UUID
	ActualDeliveryDate *time.Time
	Proof              Proof
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Delivery is the aggregate root for handing an order to its customer.
//
// Invariants:
//   - a rider is referenced whenever status is not Pending
//   - Completed implies an actual delivery date
//   - status changes only along the delivery table
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	number string

	// orderID is the sales order being delivered; the two lifecycles are independent
	orderID kernel.UUID

	// scheduledDate is the planned slot, nil when not yet planned
	scheduledDate *time.Time

	notes string

	// status is the position in the delivery lifecycle
	status Status

	// riderID is nil only while the delivery is Pending and unattached
	riderID *kernel.UUID

	// actualDeliveryDate is stamped on completion
	actualDeliveryDate *time.Time

	// proof holds the signature and photo references taken on completion
	proof Proof

	createdAt time.Time
	updatedAt time.Time

	// events holds status changes not yet published
	events lifecycle.Events

	guard guard.ConstructorGuard
}

// NewDelivery creates a Pending delivery with no rider.
//
// Parameters:
//   - id: unique identifier for the delivery (must be a valid UUID)
//   - details: Number and OrderID are required
//   - now: creation time
//
// Returns:
//   - *Delivery: the Pending delivery
//   - error: every validation failure joined with errors.Join
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), delivery.Details{
//	    Number:  "DEL-2001",
//	    OrderID: o.ID(),
//	}, clock.Now())
func NewDelivery(id kernel.UUID, details Details, now time.Time) (*Delivery, error) {
	return RestoreDelivery(id, details, State{
		Status:    Pending,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// RestoreDelivery rebuilds a delivery read from storage and checks the
// cross-field invariants.
//
// Returns:
//   - *Delivery: the rebuilt delivery with no recorded events
//   - error: validation errors; lifecycle.ErrMissingRiderAssignment for a
//     state that needs a rider but has none, ErrValueIsRequired for a
//     Completed state without a delivery date
func RestoreDelivery(id kernel.UUID, details Details, state State) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setDetails(details),
		d.setState(state),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the delivery was created through a constructor.
//
// Returns:
//   - nil if the delivery is valid
//   - ErrDeliveryIsNotConstructed for a nil or zero-value delivery
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// Number returns the delivery's number.
func (d *Delivery) Number() string { return d.number }

// OrderID returns the delivery's order ID.
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }

// Notes returns the delivery's notes.
func (d *Delivery) Notes() string { return d.notes }

// Status returns the delivery's status.
func (d *Delivery) Status() Status { return d.status }

// CreatedAt returns the delivery's creation time.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the delivery's last modification time.
func (d *Delivery) UpdatedAt() time.Time { return d.updatedAt }

// RiderID returns the referenced rider, or nil.
func (d *Delivery) RiderID() *kernel.UUID {
	if d.riderID == nil {
		return nil
	}
	id := *d.riderID
	return &id
}

// ScheduledDate returns the planned delivery time, or nil.
func (d *Delivery) ScheduledDate() *time.Time {
	return copyTime(d.scheduledDate)
}

// ActualDeliveryDate returns when the delivery was completed, or nil.
func (d *Delivery) ActualDeliveryDate() *time.Time {
	return copyTime(d.actualDeliveryDate)
}

// Proof returns a copy of the proof of delivery.
func (d *Delivery) Proof() Proof {
	return d.proof.clone()
}

// IsActive reports whether the delivery has not reached a terminal status.
func (d *Delivery) IsActive() bool {
	return !d.status.IsTerminal()
}

// Kind and StatusName implement lifecycle.Entity.
func (d *Delivery) Kind() lifecycle.Kind { return lifecycle.KindDelivery }
func (d *Delivery) StatusName() string { return d.status.String() }

func (d *Delivery) DomainEvents() []lifecycle.StatusChanged {
	return d.events.DomainEvents()
}

func (d *Delivery) ClearDomainEvents() {
	d.events.ClearDomainEvents()
}

// AttachRider references a rider while the delivery is still Pending. The
// status does not change; use TransitionTo(Assigned) or Assign for that.
func (d *Delivery) AttachRider(riderID kernel.UUID, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("riderID", err)
	}
	if d.status != Pending {
		return lifecycle.NewGuardFailedError(lifecycle.KindDelivery, d.status, Assigned,
			"rider can only be attached while pending")
	}
	d.riderID = &riderID
	d.updatedAt = now
	return nil
}

// CanTransitionTo reports whether target is reachable now, rider requirement included.
func (d *Delivery) CanTransitionTo(target Status) bool {
	return d.checkTransition(target) == nil
}

// TransitionTo moves the delivery to target. Entering Completed sets the
// actual delivery date to now. On error the delivery is left untouched.
func (d *Delivery) TransitionTo(target Status, now time.Time) error {
	if err := d.checkTransition(target); err != nil {
		return err
	}
	d.apply(target, now)
	return nil
}

// Assign attaches riderID and moves Pending -> Assigned in one step.
func (d *Delivery) Assign(riderID kernel.UUID, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("riderID", err)
	}
	if !d.status.CanTransitionTo(Assigned) {
		return lifecycle.NewInvalidTransitionError(lifecycle.KindDelivery, d.status, Assigned)
	}
	d.riderID = &riderID
	d.apply(Assigned, now)
	return nil
}

// Unassign detaches the rider and returns an Assigned delivery to Pending.
// It is the only way back to Pending and is not part of the transition table.
func (d *Delivery) Unassign(now time.Time) error {
	if d.status != Assigned {
		return lifecycle.NewInvalidTransitionError(lifecycle.KindDelivery, d.status, Pending)
	}
	d.riderID = nil
	d.apply(Pending, now)
	return nil
}

// Complete moves an InProgress delivery to Completed and stores the proof of delivery.
//
// Parameters:
//   - proof: signature and photo references, both optional
//   - now: stored as the actual delivery date and as updatedAt
//
// Returns:
//   - nil on success
//   - *lifecycle.InvalidTransitionError from any status but InProgress
//   - a validation error for a blank photo reference
func (d *Delivery) Complete(proof Proof, now time.Time) error {
	normalized, err := proof.normalized()
	if err != nil {
		return err
	}
	if err = d.checkTransition(Completed); err != nil {
		return err
	}
	d.proof = normalized
	d.apply(Completed, now)
	return nil
}

// Clone returns a deep copy that shares no mutable state with d.
func (d *Delivery) Clone() *Delivery {
	c := *d
	c.riderID = d.RiderID()
	c.scheduledDate = d.ScheduledDate()
	c.actualDeliveryDate = d.ActualDeliveryDate()
	c.proof = d.proof.clone()
	c.events = d.events.Clone()
	return &c
}

func (d *Delivery) checkTransition(target Status) error {
	if !d.status.CanTransitionTo(target) {
		return lifecycle.NewInvalidTransitionError(lifecycle.KindDelivery, d.status, target)
	}
	if target.RequiresRider() && d.riderID == nil {
		return fmt.Errorf("%w: delivery %s cannot move to %s", lifecycle.ErrMissingRiderAssignment, d.number, target)
	}
	return nil
}

func (d *Delivery) apply(target Status, now time.Time) {
	d.events.Record(lifecycle.StatusChanged{
		Kind:       lifecycle.KindDelivery,
		ID:         d.id,
		From:       d.status.String(),
		To:         target.String(),
		OccurredAt: now,
	})
	d.status = target
	d.updatedAt = now
	if target == Completed {
		d.actualDeliveryDate = &now
	}
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setDetails(details Details) error {
	number := strings.TrimSpace(details.Number)
	var problems []error
	if number == "" {
		problems = append(problems, errs.NewValueIsRequiredError("number"))
	}
	if err := details.OrderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("orderID", err))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	d.number = number
	d.orderID = details.OrderID
	d.scheduledDate = copyTime(details.ScheduledDate)
	d.notes = details.Notes
	return nil
}

func (d *Delivery) setState(state State) error {
	if err := state.Status.Validate(); err != nil {
		return err
	}
	if state.RiderID != nil {
		if err := state.RiderID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("riderID", err)
		}
	}
	if state.Status.RequiresRider() && state.RiderID == nil {
		return fmt.Errorf("%w: status %s", lifecycle.ErrMissingRiderAssignment, state.Status)
	}
	if state.Status == Completed && state.ActualDeliveryDate == nil {
		return errs.NewValueIsRequiredErrorWithCause("actualDeliveryDate",
			errors.New("completed deliveries must have an actual delivery date"))
	}
	if state.CreatedAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if state.UpdatedAt.Before(state.CreatedAt) {
		return errs.NewValueIsInvalidErrorWithCause("updatedAt",
			fmt.Errorf("%s is before createdAt %s", state.UpdatedAt, state.CreatedAt))
	}
	proof, err := state.Proof.normalized()
	if err != nil {
		return err
	}

	d.status = state.Status
	if state.RiderID != nil {
		id := *state.RiderID
		d.riderID = &id
	}
	d.actualDeliveryDate = copyTime(state.ActualDeliveryDate)
	d.proof = proof
	d.createdAt = state.CreatedAt
	d.updatedAt = state.UpdatedAt
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
