package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Details carries the descriptive fields of an order. Everything that is not
// lifecycle state lives here.
type Details struct {
	Number          string
	CustomerID      kernel.UUID
	Items           []Item
	ShippingAddress Address
	BillingAddress  Address
	ShippingMethod  string
	ShippingCost    kernel.Money
	Tax             kernel.Money
	Discount        kernel.Money
	PaymentMethod   string
	Notes           string
}

// Order is the sales order aggregate root.
//
// Order follows these invariants:
//   - Must have a valid identifier, a number and a customer
//   - Must have at least one line item
//   - Shipping cost, tax and discount are never negative
//   - The grand total is derived, never stored
//   - Status changes only along the order transition table
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-facing order number, e.g. ORD-1001
	number string

	customerID kernel.UUID

	// items are the ordered lines, kept in the order they were placed
	items []Item

	shippingAddress Address

	// billingAddress is often the shipping address; callers copy it
	billingAddress Address

	shippingMethod string
	shippingCost   kernel.Money
	tax            kernel.Money

	// discount applies to the whole order, on top of item discounts
	discount kernel.Money

	paymentMethod string
	notes         string

	// status is the position in the fulfilment lifecycle
	status Status

	// paymentStatus moves freely and has no transition table
	paymentStatus PaymentStatus

	createdAt time.Time

	// updatedAt is stamped by every successful transition
	updatedAt time.Time

	// events holds status changes not yet published
	events lifecycle.Events

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order with a Pending payment status.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - details: descriptive fields; Number, CustomerID, Items and both
//     addresses are required, money fields must not be negative
//   - now: creation time, used for both createdAt and updatedAt
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: every validation failure joined with errors.Join
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
//	    Number:          "ORD-1001",
//	    CustomerID:      customerID,
//	    Items:           []order.Item{milk, bread},
//	    ShippingAddress: address,
//	    BillingAddress:  address,
//	}, clock.Now())
func NewOrder(id kernel.UUID, details Details, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setTimestamps(now, now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from storage. It applies the same
// validation as NewOrder plus the persisted status and timestamps.
//
// Returns:
//   - *Order: the rebuilt order with no recorded events
//   - error: validation errors, including an unknown status or
//     updatedAt earlier than createdAt
func RestoreOrder(
	id kernel.UUID,
	details Details,
	status Status,
	paymentStatus PaymentStatus,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setStatus(status),
		o.setPaymentStatus(paymentStatus),
		o.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through a constructor.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for a nil or zero-value order
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the order's number.
func (o *Order) Number() string { return o.number }

// CustomerID returns the order's customer ID.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// ShippingAddress returns the order's shipping address.
func (o *Order) ShippingAddress() Address { return o.shippingAddress }

// BillingAddress returns the order's billing address.
func (o *Order) BillingAddress() Address { return o.billingAddress }

// ShippingMethod returns the order's shipping method.
func (o *Order) ShippingMethod() string { return o.shippingMethod }

// ShippingCost returns the order's shipping cost.
func (o *Order) ShippingCost() kernel.Money { return o.shippingCost }

// Tax returns the order's tax.
func (o *Order) Tax() kernel.Money { return o.tax }

// Discount returns the order's discount.
func (o *Order) Discount() kernel.Money { return o.discount }

// PaymentMethod returns the order's payment method.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// Notes returns the order's notes.
func (o *Order) Notes() string { return o.notes }

// Status returns the order's status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the order's payment status.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the order's last modification time.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Subtotal returns the sum of line totals.
func (o *Order) Subtotal() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.Total())
	}
	return sum
}

// Total returns Σ line totals + shipping cost + tax − discount.
func (o *Order) Total() kernel.Money {
	return o.Subtotal().Add(o.shippingCost).Add(o.tax).Sub(o.discount)
}

// Kind implements lifecycle.Entity.
func (o *Order) Kind() lifecycle.Kind {
	return lifecycle.KindOrder
}

// StatusName implements lifecycle.Entity.
func (o *Order) StatusName() string {
	return o.status.String()
}

// DomainEvents returns the status changes recorded since the last clear.
func (o *Order) DomainEvents() []lifecycle.StatusChanged {
	return o.events.DomainEvents()
}

// ClearDomainEvents drops recorded status changes.
func (o *Order) ClearDomainEvents() {
	o.events.ClearDomainEvents()
}

// CanTransitionTo reports whether target is reachable from the current status.
func (o *Order) CanTransitionTo(target Status) bool {
	return o.status.CanTransitionTo(target)
}

// TransitionTo moves the order to target and stamps updatedAt with now.
// On error the order is left untouched.
//
// Parameters:
//   - target: the requested status
//   - now: time of the change
//
// Returns:
//   - nil after recording a StatusChanged event
//   - *lifecycle.InvalidTransitionError when the table has no such edge
//
// Example:
//
//	if err := o.TransitionTo(order.Processing, clock.Now()); err != nil {
//	    if errors.Is(err, lifecycle.ErrInvalidTransition) {
//	        // 409
//	    }
//	}
func (o *Order) TransitionTo(target Status, now time.Time) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.events.Record(lifecycle.StatusChanged{
		Kind:       lifecycle.KindOrder,
		ID:         o.id,
		From:       o.status.String(),
		To:         next.String(),
		OccurredAt: now,
	})
	o.status = next
	o.updatedAt = now
	return nil
}

// UpdatePaymentStatus records a new payment status. Payment states carry no
// transition rules.
func (o *Order) UpdatePaymentStatus(status PaymentStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	o.updatedAt = now
	return nil
}

// Clone returns a deep copy that shares no mutable state with o.
func (o *Order) Clone() *Order {
	c := *o
	c.items = slices.Clone(o.items)
	c.events = o.events.Clone()
	return &c
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(d Details) error {
	err := errors.Join(
		o.setNumber(d.Number),
		o.setCustomerID(d.CustomerID),
		o.setItems(d.Items),
		o.setAddresses(d.ShippingAddress, d.BillingAddress),
		kernel.RequireNonNegative("shippingCost", d.ShippingCost),
		kernel.RequireNonNegative("tax", d.Tax),
		kernel.RequireNonNegative("discount", d.Discount),
	)
	if err != nil {
		return err
	}

	o.shippingMethod = strings.TrimSpace(d.ShippingMethod)
	o.shippingCost = d.ShippingCost
	o.tax = d.Tax
	o.discount = d.Discount
	o.paymentMethod = strings.TrimSpace(d.PaymentMethod)
	o.notes = d.Notes
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	seen := make(map[kernel.UUID]struct{}, len(items))
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
		if _, dup := seen[item.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("duplicate item %s", item.ID()))
		}
		seen[item.ID()] = struct{}{}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setAddresses(shipping, billing Address) error {
	if err := errors.Join(
		wrapAddress("shippingAddress", shipping.Validate()),
		wrapAddress("billingAddress", billing.Validate()),
	); err != nil {
		return err
	}
	o.shippingAddress = shipping
	o.billingAddress = billing
	return nil
}

func wrapAddress(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(param, err)
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("updatedAt",
			fmt.Errorf("%s is before createdAt %s", updatedAt, createdAt))
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}
