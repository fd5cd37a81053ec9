package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrUnassignRiderCommandIsNotConstructed = errors.New(
	"UnassignRiderCommand must be created via NewUnassignRiderCommand constructor",
)

// UnassignRiderCommand takes the rider off an assigned delivery and returns it to pending.
type UnassignRiderCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUnassignRiderCommand(deliveryID kernel.UUID) (UnassignRiderCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return UnassignRiderCommand{}, err
	}
	return UnassignRiderCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UnassignRiderCommand) Validate() error {
	return c.guard.Validate(ErrUnassignRiderCommandIsNotConstructed)
}

func (c UnassignRiderCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
