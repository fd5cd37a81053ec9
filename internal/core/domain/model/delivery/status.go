package delivery

import (
	"fmt"

	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery.
type Status int

const (
	Unknown Status = iota
	Pending
	Assigned
	InProgress
	Completed
	Failed
	Cancelled
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is rendered by String's fallback
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in-progress",
		Completed:  "completed",
		Failed:     "failed",
		Cancelled:  "cancelled",
	}
}

func getStatusDisplays() map[Status]lifecycle.Display {
	//nolint:exhaustive // Unknown has no projection
	return map[Status]lifecycle.Display{
		Pending:    {Label: "Pending Assignment", Tier: lifecycle.TierNeutral, Progress: 0},
		Assigned:   {Label: "Assigned", Tier: lifecycle.TierInfo, Progress: 25},
		InProgress: {Label: "In Progress", Tier: lifecycle.TierWarning, Progress: 60},
		Completed:  {Label: "Completed", Tier: lifecycle.TierSuccess, Progress: 100},
		Failed:     {Label: "Failed", Tier: lifecycle.TierDanger, Progress: 75},
		Cancelled:  {Label: "Cancelled", Tier: lifecycle.TierDanger, Progress: 25},
	}
}

// Transitions returns the delivery transition table.
func Transitions() lifecycle.Table[Status] {
	return lifecycle.Table[Status]{
		Pending:    {Assigned},
		Assigned:   {InProgress, Failed, Cancelled},
		InProgress: {Completed, Failed, Cancelled},
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, InProgress, Completed, Failed, Cancelled}
}

// ParseStatus converts the kebab-case name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, lifecycle.NewUnknownStatusError(lifecycle.KindDelivery, s)
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return Transitions().IsTerminal(s)
}

// RequiresRider reports whether a delivery in this status must reference a rider.
func (s Status) RequiresRider() bool {
	return s != Pending
}

// CanTransitionTo consults the table only; the rider requirement is checked by Delivery.
func (s Status) CanTransitionTo(target Status) bool {
	return Transitions().Allows(s, target)
}

func (s Status) Display() (lifecycle.Display, error) {
	d, ok := getStatusDisplays()[s]
	if !ok {
		return lifecycle.Display{}, lifecycle.NewUnknownStatusError(lifecycle.KindDelivery, s.String())
	}
	return d, nil
}

// ActiveStatuses lists the non-terminal statuses.
func ActiveStatuses() []Status {
	var active []Status
	for _, s := range Statuses() {
		if !s.IsTerminal() {
			active = append(active, s)
		}
	}
	return active
}
