package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/rider"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrUpdateRiderAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateRiderAvailabilityCommand must be created via NewUpdateRiderAvailabilityCommand constructor",
)

// UpdateRiderAvailabilityCommand lets a rider go online or offline.
// Busy is reached only through delivery assignment and cannot be requested here.
type UpdateRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	status  rider.Status

	guard guard.ConstructorGuard
}

func NewUpdateRiderAvailabilityCommand(riderID kernel.UUID, status rider.Status) (UpdateRiderAvailabilityCommand, error) {
	if err := riderID.Validate(); err != nil {
		return UpdateRiderAvailabilityCommand{}, err
	}
	if status != rider.Available && status != rider.Offline {
		return UpdateRiderAvailabilityCommand{}, errs.NewValueIsInvalidError("status")
	}
	return UpdateRiderAvailabilityCommand{
		riderID: riderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderAvailabilityCommandIsNotConstructed)
}

func (c UpdateRiderAvailabilityCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c UpdateRiderAvailabilityCommand) Status() rider.Status {
	return c.status
}
