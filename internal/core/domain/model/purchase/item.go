package purchase

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned for a zero-value Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("purchase order item must be created via NewItem")

// Item is one product line of a purchase order together with how much of it
// has arrived so far.
type Item struct { //nolint:recvcheck //using for validation
	id               kernel.UUID
	productID        kernel.UUID
	productName      string
	quantity         int
	unitPrice        kernel.Money
	tax              kernel.Money
	receivedQuantity int
	guard            guard.ConstructorGuard
}

// NewItem creates a line with nothing received yet.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	tax kernel.Money,
) (Item, error) {
	return RestoreItem(id, productID, productName, quantity, unitPrice, tax, 0)
}

// RestoreItem rebuilds a line from storage, including its received quantity.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	tax kernel.Money,
	receivedQuantity int,
) (Item, error) {
	item := Item{
		productName: strings.TrimSpace(productName),
		unitPrice:   unitPrice,
		tax:         tax,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		kernel.RequireNonNegative("unitPrice", unitPrice),
		kernel.RequireNonNegative("tax", tax),
	); err != nil {
		return Item{}, err
	}

	if receivedQuantity < 0 || receivedQuantity > quantity {
		return Item{}, errs.NewValueIsOutOfRangeError("receivedQuantity", receivedQuantity, 0, quantity)
	}
	item.receivedQuantity = receivedQuantity

	return item, nil
}

// Validate ensures the item was created through NewItem or RestoreItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the unique identifier.
func (i Item) ID() kernel.UUID { return i.id }

// ProductID returns the product identifier.
func (i Item) ProductID() kernel.UUID { return i.productID }

// ProductName returns the product name.
func (i Item) ProductName() string { return i.productName }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// Tax returns the tax for the whole line.
func (i Item) Tax() kernel.Money { return i.tax }

// ReceivedQuantity returns the number of units booked so far.
func (i Item) ReceivedQuantity() int { return i.receivedQuantity }

// Total returns quantity × unitPrice. Tax is added at order level.
func (i Item) Total() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}

// Outstanding returns how many units are still expected.
func (i Item) Outstanding() int {
	return i.quantity - i.receivedQuantity
}

// IsFullyReceived reports receivedQuantity == quantity.
func (i Item) IsFullyReceived() bool {
	return i.receivedQuantity == i.quantity
}

// IsPartiallyReceived reports 0 < receivedQuantity < quantity.
func (i Item) IsPartiallyReceived() bool {
	return i.receivedQuantity > 0 && i.receivedQuantity < i.quantity
}

// receive returns a copy of the item with quantity more units booked.
// The check runs against Outstanding so a huge quantity cannot wrap around.
func (i Item) receive(quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > i.Outstanding() {
		return Item{}, &lifecycle.ReceivedQuantityExceedsOrderedError{
			ItemID:    i.id.String(),
			Ordered:   i.quantity,
			Received:  i.receivedQuantity,
			Requested: quantity,
		}
	}
	i.receivedQuantity += quantity
	return i, nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	i.productID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
