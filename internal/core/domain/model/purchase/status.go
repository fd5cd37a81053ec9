package purchase

import (
	"fmt"

	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
)

// Status is the lifecycle state of a purchase order.
type Status int

const (
	Unknown Status = iota
	Draft
	Sent
	Confirmed
	Partial
	Received
	Cancelled
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is rendered by String's fallback
	return map[Status]string{
		Draft:     "draft",
		Sent:      "sent",
		Confirmed: "confirmed",
		Partial:   "partial",
		Received:  "received",
		Cancelled: "cancelled",
	}
}

func getStatusDisplays() map[Status]lifecycle.Display {
	//nolint:exhaustive // Unknown has no projection
	return map[Status]lifecycle.Display{
		Draft:     {Label: "Draft", Tier: lifecycle.TierNeutral, Progress: 0},
		Sent:      {Label: "Sent", Tier: lifecycle.TierInfo, Progress: 25},
		Confirmed: {Label: "Confirmed", Tier: lifecycle.TierInfo, Progress: 50},
		Partial:   {Label: "Partially Received", Tier: lifecycle.TierWarning, Progress: 75},
		Received:  {Label: "Received", Tier: lifecycle.TierSuccess, Progress: 100},
		Cancelled: {Label: "Cancelled", Tier: lifecycle.TierDanger, Progress: 0},
	}
}

// Transitions returns the purchase order transition table. Guards that depend
// on item quantities are enforced by PurchaseOrder, not by the table.
func Transitions() lifecycle.Table[Status] {
	return lifecycle.Table[Status]{
		Draft:     {Sent, Cancelled},
		Sent:      {Confirmed, Cancelled},
		Confirmed: {Received, Partial},
		Partial:   {Received},
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Draft, Sent, Confirmed, Partial, Received, Cancelled}
}

// ParseStatus converts the lower-case name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, lifecycle.NewUnknownStatusError(lifecycle.KindPurchaseOrder, s)
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects Unknown and values outside the enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid purchase order status", s))
	}
	return nil
}

func (s Status) IsTerminal() bool {
	return Transitions().IsTerminal(s)
}

// CanTransitionTo consults the table only; quantity guards are not checked.
func (s Status) CanTransitionTo(target Status) bool {
	return Transitions().Allows(s, target)
}

// IsReceiving reports whether goods may be booked against the order.
func (s Status) IsReceiving() bool {
	return s == Confirmed || s == Partial
}

func (s Status) Display() (lifecycle.Display, error) {
	d, ok := getStatusDisplays()[s]
	if !ok {
		return lifecycle.Display{}, lifecycle.NewUnknownStatusError(lifecycle.KindPurchaseOrder, s.String())
	}
	return d, nil
}
