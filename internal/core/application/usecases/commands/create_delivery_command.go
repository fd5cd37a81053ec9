package commands

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand schedules the delivery of an existing sales order.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	details    delivery.Details

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(deliveryID kernel.UUID, details delivery.Details) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	var problems []error
	if err := deliveryID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(details.Number) == "" {
		problems = append(problems, ErrNumberIsRequired)
	}
	if err := details.OrderID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return CreateDeliveryCommand{}, err
	}

	cmd.deliveryID = deliveryID
	cmd.details = details
	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CreateDeliveryCommand) Details() delivery.Details {
	return c.details
}
