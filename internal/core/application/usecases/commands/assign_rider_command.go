package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand hands a pending delivery to a specific rider.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	riderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(deliveryID, riderID kernel.UUID) (AssignRiderCommand, error) {
	if err := errors.Join(deliveryID.Validate(), riderID.Validate()); err != nil {
		return AssignRiderCommand{}, err
	}
	return AssignRiderCommand{
		deliveryID: deliveryID,
		riderID:    riderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}
