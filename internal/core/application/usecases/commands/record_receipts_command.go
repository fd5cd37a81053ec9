package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrRecordReceiptsCommandIsNotConstructed = errors.New(
		"RecordReceiptsCommand must be created via NewRecordReceiptsCommand constructor",
	)
	ErrReceiptsAreRequired = errs.NewValueIsRequiredError("receipts")
)

// RecordReceiptsCommand books goods received against purchase order items.
// Quantities are deltas added to what was received before.
type RecordReceiptsCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID
	receipts        []purchase.Receipt

	guard guard.ConstructorGuard
}

func NewRecordReceiptsCommand(purchaseOrderID kernel.UUID, receipts []purchase.Receipt) (RecordReceiptsCommand, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return RecordReceiptsCommand{}, err
	}
	if len(receipts) == 0 {
		return RecordReceiptsCommand{}, ErrReceiptsAreRequired
	}

	return RecordReceiptsCommand{
		purchaseOrderID: purchaseOrderID,
		receipts:        append([]purchase.Receipt(nil), receipts...),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c RecordReceiptsCommand) Validate() error {
	return c.guard.Validate(ErrRecordReceiptsCommandIsNotConstructed)
}

func (c RecordReceiptsCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c RecordReceiptsCommand) Receipts() []purchase.Receipt {
	return append([]purchase.Receipt(nil), c.receipts...)
}
