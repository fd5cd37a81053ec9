package order

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned for a zero-value Item.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("order item must be created via NewItem")

// Item is one product line of a sales order.
//
// Its total is quantity × unitPrice − discount. Item tax is kept for display;
// the order's header tax is what enters the grand total.
type Item struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   kernel.Money
	tax         kernel.Money
	discount    kernel.Money
	guard       guard.ConstructorGuard
}

// NewItem validates a line. Quantity must be positive, money values must not
// be negative and the discount may not exceed the line's gross amount.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	tax kernel.Money,
	discount kernel.Money,
) (Item, error) {
	item := Item{
		productName: strings.TrimSpace(productName),
		unitPrice:   unitPrice,
		tax:         tax,
		discount:    discount,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		kernel.RequireNonNegative("unitPrice", unitPrice),
		kernel.RequireNonNegative("tax", tax),
		kernel.RequireNonNegative("discount", discount),
	); err != nil {
		return Item{}, err
	}

	if item.Total().IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%s exceeds line amount %s", discount, unitPrice.Times(quantity)))
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() kernel.UUID { return i.id }
func (i Item) ProductID() kernel.UUID { return i.productID }
func (i Item) ProductName() string { return i.productName }
func (i Item) Quantity() int { return i.quantity }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) Tax() kernel.Money { return i.tax }
func (i Item) Discount() kernel.Money { return i.discount }

// Total returns quantity × unitPrice − discount.
func (i Item) Total() kernel.Money {
	return i.unitPrice.Times(i.quantity).Sub(i.discount)
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
