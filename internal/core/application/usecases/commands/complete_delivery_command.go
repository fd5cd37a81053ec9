package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand closes an in-progress delivery with its proof of delivery.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	proof      delivery.Proof

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(deliveryID kernel.UUID, proof delivery.Proof) (CompleteDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	return CompleteDeliveryCommand{
		deliveryID: deliveryID,
		proof: delivery.Proof{
			Signature: proof.Signature,
			Photos:    append([]string(nil), proof.Photos...),
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CompleteDeliveryCommand) Proof() delivery.Proof {
	return c.proof
}
