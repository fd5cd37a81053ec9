package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when the requested edge is not in the
	// transition table or its guard does not hold.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingRiderAssignment is returned when a delivery would leave
	// pending without a rider.
	ErrMissingRiderAssignment = errors.New("delivery has no rider assigned")

	// ErrReceivedQuantityExceedsOrdered is returned when a receipt would push
	// an item's received quantity above the ordered quantity.
	ErrReceivedQuantityExceedsOrdered = errors.New("received quantity exceeds ordered quantity")

	// ErrUnknownStatus is returned for a status string outside the enumeration.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrUnknownKind is returned for an entity kind outside the enumeration.
	ErrUnknownKind = errors.New("unknown entity kind")

	// ErrRiderUnavailable is returned when assigning a rider who is not available.
	ErrRiderUnavailable = errors.New("rider is not available")
)

// InvalidTransitionError describes a rejected edge. Reason is set when the
// edge exists but its guard failed.
type InvalidTransitionError struct {
	Kind   Kind
	From   string
	To     string
	Reason string
}

// NewInvalidTransitionError creates an InvalidTransitionError for an edge missing from the table.
func NewInvalidTransitionError(kind Kind, from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{Kind: kind, From: from.String(), To: to.String()}
}

// NewGuardFailedError creates an InvalidTransitionError for an edge whose guard does not hold.
func NewGuardFailedError(kind Kind, from, to fmt.Stringer, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{Kind: kind, From: from.String(), To: to.String(), Reason: reason}
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s %s -> %s (%s)", ErrInvalidTransition, e.Kind, e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s -> %s", ErrInvalidTransition, e.Kind, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ReceivedQuantityExceedsOrderedError carries the quantities of the rejected receipt.
type ReceivedQuantityExceedsOrderedError struct {
	ItemID    string
	Ordered   int
	Received  int
	Requested int
}

func (e *ReceivedQuantityExceedsOrderedError) Error() string {
	return fmt.Sprintf("%s: item %s ordered %d, already received %d, requested %d",
		ErrReceivedQuantityExceedsOrdered, e.ItemID, e.Ordered, e.Received, e.Requested)
}

func (e *ReceivedQuantityExceedsOrderedError) Unwrap() error {
	return ErrReceivedQuantityExceedsOrdered
}

// UnknownStatusError names the kind and the raw status that failed to parse.
type UnknownStatusError struct {
	Kind   Kind
	Status string
}

// NewUnknownStatusError creates an UnknownStatusError.
func NewUnknownStatusError(kind Kind, status string) *UnknownStatusError {
	return &UnknownStatusError{Kind: kind, Status: status}
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrUnknownStatus, e.Kind, e.Status)
}

func (e *UnknownStatusError) Unwrap() error {
	return ErrUnknownStatus
}
