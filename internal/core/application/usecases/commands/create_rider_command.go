package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/rider"
	"backoffice/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// CreateRiderCommand registers a new available rider.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	contact rider.Contact

	guard guard.ConstructorGuard
}

func NewCreateRiderCommand(riderID kernel.UUID, contact rider.Contact) (CreateRiderCommand, error) {
	if err := riderID.Validate(); err != nil {
		return CreateRiderCommand{}, err
	}
	if contact.Name == "" {
		return CreateRiderCommand{}, rider.ErrNameIsRequired
	}
	return CreateRiderCommand{
		riderID: riderID,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

func (c CreateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c CreateRiderCommand) Contact() rider.Contact {
	return c.contact
}
