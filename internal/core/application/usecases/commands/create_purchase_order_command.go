package commands

import (
	"errors"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/guard"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand registers a new purchase order in Draft status.
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID
	details         purchase.Details

	guard guard.ConstructorGuard
}

func NewCreatePurchaseOrderCommand(
	purchaseOrderID kernel.UUID,
	details purchase.Details,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	var problems []error
	if err := purchaseOrderID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(details.Number) == "" {
		problems = append(problems, ErrNumberIsRequired)
	}
	if len(details.Items) == 0 {
		problems = append(problems, ErrItemsAreRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	cmd.purchaseOrderID = purchaseOrderID
	cmd.details = details
	return cmd, nil
}

func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

func (c CreatePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c CreatePurchaseOrderCommand) Details() purchase.Details {
	return c.details
}
