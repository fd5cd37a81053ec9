package rider

import (
	"fmt"

	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
)

// Status is the availability of a rider.
type Status int

const (
	Unknown Status = iota
	Available
	Busy
	Offline
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is rendered by String's fallback
	return map[Status]string{
		Available: "available",
		Busy:      "busy",
		Offline:   "offline",
	}
}

func getStatusDisplays() map[Status]lifecycle.Display {
	//nolint:exhaustive // Unknown has no projection
	return map[Status]lifecycle.Display{
		Available: {Label: "Available", Tier: lifecycle.TierSuccess, Progress: 0},
		Busy:      {Label: "Busy", Tier: lifecycle.TierWarning, Progress: 0},
		Offline:   {Label: "Offline", Tier: lifecycle.TierNeutral, Progress: 0},
	}
}

// Transitions returns the availability table.
func Transitions() lifecycle.Table[Status] {
	return lifecycle.Table[Status]{
		Available: {Busy, Offline},
		Busy:      {Available},
		Offline:   {Available},
	}
}

// Statuses lists every valid status.
func Statuses() []Status {
	return []Status{Available, Busy, Offline}
}

// ParseStatus converts the lower-case name into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, lifecycle.NewUnknownStatusError(lifecycle.KindRider, s)
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid rider status", s))
	}
	return nil
}

// CanTransitionTo reports whether target is reachable from s.
func (s Status) CanTransitionTo(target Status) bool {
	return Transitions().Allows(s, target)
}

func (s Status) Display() (lifecycle.Display, error) {
	d, ok := getStatusDisplays()[s]
	if !ok {
		return lifecycle.Display{}, lifecycle.NewUnknownStatusError(lifecycle.KindRider, s.String())
	}
	return d, nil
}
