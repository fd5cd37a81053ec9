package order

import (
	"fmt"

	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
)

// Status is the lifecycle state of a sales order.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	Pending
	Processing
	ReadyForDelivery
	OutForDelivery
	Delivered
	Cancelled
	Returned
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is rendered by String's fallback
	return map[Status]string{
		Pending:          "pending",
		Processing:       "processing",
		ReadyForDelivery: "ready-for-delivery",
		OutForDelivery:   "out-for-delivery",
		Delivered:        "delivered",
		Cancelled:        "cancelled",
		Returned:         "returned",
	}
}

func getStatusDisplays() map[Status]lifecycle.Display {
	//nolint:exhaustive // Unknown has no projection
	return map[Status]lifecycle.Display{
		Pending:          {Label: "Pending", Tier: lifecycle.TierNeutral, Progress: 0},
		Processing:       {Label: "Processing", Tier: lifecycle.TierInfo, Progress: 25},
		ReadyForDelivery: {Label: "Ready", Tier: lifecycle.TierWarning, Progress: 50},
		OutForDelivery:   {Label: "Out for Delivery", Tier: lifecycle.TierInfo, Progress: 75},
		Delivered:        {Label: "Delivered", Tier: lifecycle.TierSuccess, Progress: 100},
		Cancelled:        {Label: "Cancelled", Tier: lifecycle.TierDanger, Progress: 0},
		Returned:         {Label: "Returned", Tier: lifecycle.TierWarning, Progress: 100},
	}
}

// Transitions returns the order transition table.
func Transitions() lifecycle.Table[Status] {
	return lifecycle.Table[Status]{
		Pending:          {Processing, Cancelled},
		Processing:       {ReadyForDelivery, Cancelled},
		ReadyForDelivery: {OutForDelivery},
		OutForDelivery:   {Delivered},
		Delivered:        {Returned},
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Processing, ReadyForDelivery, OutForDelivery, Delivered, Cancelled, Returned}
}

// ParseStatus converts the kebab-case name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, lifecycle.NewUnknownStatusError(lifecycle.KindOrder, s)
}

// String returns the kebab-case name of the status, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects Unknown and values outside the enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return Transitions().IsTerminal(s)
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	return Transitions().Allows(s, target)
}

// TransitionTo returns target when the edge exists, otherwise an
// InvalidTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, lifecycle.NewInvalidTransitionError(lifecycle.KindOrder, s, target)
	}
	return target, nil
}

// Display returns the badge projection of the status.
func (s Status) Display() (lifecycle.Display, error) {
	d, ok := getStatusDisplays()[s]
	if !ok {
		return lifecycle.Display{}, lifecycle.NewUnknownStatusError(lifecycle.KindOrder, s.String())
	}
	return d, nil
}
