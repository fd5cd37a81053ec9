package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrMarkPurchaseOrderReceivedCommandIsNotConstructed = errors.New(
	"MarkPurchaseOrderReceivedCommand must be created via NewMarkPurchaseOrderReceivedCommand constructor",
)

// MarkPurchaseOrderReceivedCommand receives every outstanding quantity at once.
type MarkPurchaseOrderReceivedCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkPurchaseOrderReceivedCommand(purchaseOrderID kernel.UUID) (MarkPurchaseOrderReceivedCommand, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return MarkPurchaseOrderReceivedCommand{}, err
	}
	return MarkPurchaseOrderReceivedCommand{
		purchaseOrderID: purchaseOrderID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c MarkPurchaseOrderReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPurchaseOrderReceivedCommandIsNotConstructed)
}

func (c MarkPurchaseOrderReceivedCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}
