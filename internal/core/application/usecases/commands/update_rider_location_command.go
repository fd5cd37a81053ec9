package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrUpdateRiderLocationCommandIsNotConstructed = errors.New(
	"UpdateRiderLocationCommand must be created via NewUpdateRiderLocationCommand constructor",
)

// UpdateRiderLocationCommand stores the last reported position of a rider.
type UpdateRiderLocationCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	location kernel.GeoLocation

	guard guard.ConstructorGuard
}

func NewUpdateRiderLocationCommand(riderID kernel.UUID, location kernel.GeoLocation) (UpdateRiderLocationCommand, error) {
	if err := errors.Join(riderID.Validate(), location.Validate()); err != nil {
		return UpdateRiderLocationCommand{}, err
	}
	return UpdateRiderLocationCommand{
		riderID:  riderID,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRiderLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderLocationCommandIsNotConstructed)
}

func (c UpdateRiderLocationCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c UpdateRiderLocationCommand) Location() kernel.GeoLocation {
	return c.location
}
