package purchase

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

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder was not
	// created through NewPurchaseOrder or RestorePurchaseOrder.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder constructor")

	// ErrNotReceiving is returned when goods are booked against a purchase
	// order that is neither confirmed nor partially received.
	ErrNotReceiving = fmt.Errorf("%w: purchase order is not receiving goods", lifecycle.ErrInvalidTransition)
)

// Receipt books quantity units of one item.
type Receipt struct {
	ItemID   kernel.UUID
	Quantity int
}

// Details carries the descriptive fields of a purchase order.
type Details struct {
	Number       string
	VendorID     kernel.UUID
	Items        []Item
	DeliveryDate *time.Time
	Notes        string
}

// PurchaseOrder is the aggregate root for goods ordered from a vendor.
//
// Invariants:
//   - At least one line item, with unique item ids
//   - 0 ≤ receivedQuantity ≤ quantity for every item, after every operation
//   - Status changes only along the purchase order table and its guards
//   - The total is derived from the items, never stored
type PurchaseOrder struct {
	// id is the unique identifier for the purchase order
	id kernel.UUID

	number   string
	vendorID kernel.UUID

	// items carry both the ordered and the received quantities
	items []Item

	// deliveryDate is the date the vendor promised, nil when unknown
	deliveryDate *time.Time

	notes string

	// status is the position in the purchasing lifecycle
	status Status

	createdAt time.Time
	updatedAt time.Time

	// events holds status changes not yet published
	events lifecycle.Events

	guard guard.ConstructorGuard
}

// NewPurchaseOrder creates a Draft purchase order. Items must have nothing
// received yet.
//
// Parameters:
//   - id: unique identifier for the purchase order (must be a valid UUID)
//   - details: Number, VendorID and at least one item are required
//   - now: creation time
//
// Returns:
//   - *PurchaseOrder: the Draft purchase order
//   - error: every validation failure joined with errors.Join, or
//     ErrValueIsInvalid when an item already has goods received
//
// Example:
//
//	rice, _ := purchase.NewItem(kernel.NewUUID(), productID, "Basmati rice 5kg", 40,
//	    kernel.MoneyFromCents(1250), kernel.ZeroMoney())
//	po, err := purchase.NewPurchaseOrder(kernel.NewUUID(), purchase.Details{
//	    Number:   "PO-2024-001",
//	    VendorID: vendorID,
//	    Items:    []purchase.Item{rice},
//	}, clock.Now())
func NewPurchaseOrder(id kernel.UUID, details Details, now time.Time) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setDetails(details),
		po.setTimestamps(now, now),
	); err != nil {
		return nil, err
	}

	for _, item := range po.items {
		if item.ReceivedQuantity() != 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("item %s already has %d received", item.ID(), item.ReceivedQuantity()))
		}
	}

	return po, nil
}

// RestorePurchaseOrder rebuilds a purchase order read from storage.
// Items may carry received quantities; each is checked against its
// ordered quantity by RestoreItem.
//
// Returns:
//   - *PurchaseOrder: the rebuilt purchase order with no recorded events
//   - error: validation errors joined with errors.Join
func RestorePurchaseOrder(
	id kernel.UUID,
	details Details,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setDetails(details),
		po.setStatus(status),
		po.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// Validate ensures the purchase order was created through a constructor.
//
// Returns:
//   - nil if the purchase order is valid
//   - ErrPurchaseOrderIsNotConstructed for a nil or zero-value purchase order
func (po *PurchaseOrder) Validate() error {
	if po == nil {
		return ErrPurchaseOrderIsNotConstructed
	}
	return po.guard.Validate(ErrPurchaseOrderIsNotConstructed)
}

// IsEqual compares two purchase orders by identifier.
func (po *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && po.id.IsEqual(other.id)
}

// ID returns the purchase order's unique identifier.
func (po *PurchaseOrder) ID() kernel.UUID { return po.id }

// Number returns the purchase order's number.
func (po *PurchaseOrder) Number() string { return po.number }

// VendorID returns the purchase order's vendor ID.
func (po *PurchaseOrder) VendorID() kernel.UUID { return po.vendorID }

// Notes returns the purchase order's notes.
func (po *PurchaseOrder) Notes() string { return po.notes }

// Status returns the purchase order's status.
func (po *PurchaseOrder) Status() Status { return po.status }

// CreatedAt returns the purchase order's creation time.
func (po *PurchaseOrder) CreatedAt() time.Time { return po.createdAt }

// UpdatedAt returns the purchase order's last modification time.
func (po *PurchaseOrder) UpdatedAt() time.Time { return po.updatedAt }

// DeliveryDate returns the expected delivery date, or nil when none was agreed.
func (po *PurchaseOrder) DeliveryDate() *time.Time {
	if po.deliveryDate == nil {
		return nil
	}
	d := *po.deliveryDate
	return &d
}

// Items returns a copy of the line items.
func (po *PurchaseOrder) Items() []Item {
	return slices.Clone(po.items)
}

// Item looks a line up by id.
func (po *PurchaseOrder) Item(id kernel.UUID) (Item, bool) {
	idx := po.itemIndex(id)
	if idx < 0 {
		return Item{}, false
	}
	return po.items[idx], true
}

// Total returns Σ (item total + item tax).
func (po *PurchaseOrder) Total() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range po.items {
		sum = sum.Add(item.Total()).Add(item.Tax())
	}
	return sum
}

// Kind and StatusName implement lifecycle.Entity.
func (po *PurchaseOrder) Kind() lifecycle.Kind { return lifecycle.KindPurchaseOrder }
func (po *PurchaseOrder) StatusName() string { return po.status.String() }

func (po *PurchaseOrder) DomainEvents() []lifecycle.StatusChanged {
	return po.events.DomainEvents()
}

func (po *PurchaseOrder) ClearDomainEvents() {
	po.events.ClearDomainEvents()
}

// IsFullyReceived reports whether every item has arrived in full.
func (po *PurchaseOrder) IsFullyReceived() bool {
	for _, item := range po.items {
		if !item.IsFullyReceived() {
			return false
		}
	}
	return true
}

// HasReceivedAny reports whether at least one unit has arrived.
func (po *PurchaseOrder) HasReceivedAny() bool {
	for _, item := range po.items {
		if item.ReceivedQuantity() > 0 {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether target is reachable now, guards included.
func (po *PurchaseOrder) CanTransitionTo(target Status) bool {
	return po.checkTransition(target) == nil
}

// TransitionTo moves the purchase order to target and stamps updatedAt.
// On error the purchase order is left untouched.
func (po *PurchaseOrder) TransitionTo(target Status, now time.Time) error {
	if err := po.checkTransition(target); err != nil {
		return err
	}
	po.apply(target, now)
	return nil
}

// RecordReceipts books every receipt or none of them. Receipts are accepted
// only while the order is confirmed or partially received, and may not push
// any item above its ordered quantity. The status is not changed; see
// SettleReceivingStatus.
func (po *PurchaseOrder) RecordReceipts(receipts []Receipt, now time.Time) error {
	if !po.status.IsReceiving() {
		return fmt.Errorf("%w: status is %s", ErrNotReceiving, po.status)
	}
	if len(receipts) == 0 {
		return errs.NewValueIsRequiredError("receipts")
	}

	items := slices.Clone(po.items)
	for _, r := range receipts {
		idx := po.itemIndex(r.ItemID)
		if idx < 0 {
			return errs.NewObjectNotFoundError("itemID", r.ItemID)
		}
		updated, err := items[idx].receive(r.Quantity)
		if err != nil {
			return err
		}
		items[idx] = updated
	}

	po.items = items
	po.updatedAt = now
	return nil
}

// SettleReceivingStatus moves a receiving order to the status its quantities
// imply: Received when everything arrived, Partial when something did.
// It reports whether the status changed.
//
// Example:
//
//	if err := po.RecordReceipts(receipts, now); err != nil {
//	    return err
//	}
//	if _, err := po.SettleReceivingStatus(now); err != nil {
//	    return err
//	}
func (po *PurchaseOrder) SettleReceivingStatus(now time.Time) (bool, error) {
	if !po.status.IsReceiving() {
		return false, fmt.Errorf("%w: status is %s", ErrNotReceiving, po.status)
	}

	switch {
	case po.IsFullyReceived():
		return true, po.TransitionTo(Received, now)
	case po.status == Confirmed && po.HasReceivedAny():
		return true, po.TransitionTo(Partial, now)
	default:
		return false, nil
	}
}

// MarkFullyReceived books every outstanding unit and moves to Received.
// It is allowed from Confirmed and Partial.
func (po *PurchaseOrder) MarkFullyReceived(now time.Time) error {
	if !po.status.CanTransitionTo(Received) {
		return lifecycle.NewInvalidTransitionError(lifecycle.KindPurchaseOrder, po.status, Received)
	}

	items := make([]Item, len(po.items))
	for i, item := range po.items {
		item.receivedQuantity = item.quantity
		items[i] = item
	}
	po.items = items
	po.apply(Received, now)
	return nil
}

// Clone returns a deep copy that shares no mutable state with po.
func (po *PurchaseOrder) Clone() *PurchaseOrder {
	c := *po
	c.items = slices.Clone(po.items)
	c.deliveryDate = po.DeliveryDate()
	c.events = po.events.Clone()
	return &c
}

func (po *PurchaseOrder) checkTransition(target Status) error {
	if !po.status.CanTransitionTo(target) {
		return lifecycle.NewInvalidTransitionError(lifecycle.KindPurchaseOrder, po.status, target)
	}

	//nolint:exhaustive // only quantity-guarded targets are checked
	switch target {
	case Partial:
		if !po.HasReceivedAny() || po.IsFullyReceived() {
			return lifecycle.NewGuardFailedError(lifecycle.KindPurchaseOrder, po.status, target,
				"requires some but not all goods received")
		}
	case Received:
		if !po.IsFullyReceived() {
			return lifecycle.NewGuardFailedError(lifecycle.KindPurchaseOrder, po.status, target,
				"requires every item fully received")
		}
	}
	return nil
}

func (po *PurchaseOrder) apply(target Status, now time.Time) {
	po.events.Record(lifecycle.StatusChanged{
		Kind:       lifecycle.KindPurchaseOrder,
		ID:         po.id,
		From:       po.status.String(),
		To:         target.String(),
		OccurredAt: now,
	})
	po.status = target
	po.updatedAt = now
}

func (po *PurchaseOrder) itemIndex(id kernel.UUID) int {
	return slices.IndexFunc(po.items, func(item Item) bool {
		return item.ID().IsEqual(id)
	})
}

func (po *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	po.id = id
	return nil
}

func (po *PurchaseOrder) setDetails(d Details) error {
	if err := errors.Join(
		po.setNumber(d.Number),
		po.setVendorID(d.VendorID),
		po.setItems(d.Items),
	); err != nil {
		return err
	}
	if d.DeliveryDate != nil {
		date := *d.DeliveryDate
		po.deliveryDate = &date
	}
	po.notes = d.Notes
	return nil
}

func (po *PurchaseOrder) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	po.number = number
	return nil
}

func (po *PurchaseOrder) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorID", err)
	}
	po.vendorID = id
	return nil
}

func (po *PurchaseOrder) setItems(items []Item) error {
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
	po.items = slices.Clone(items)
	return nil
}

func (po *PurchaseOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	po.status = status
	return nil
}

func (po *PurchaseOrder) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("updatedAt",
			fmt.Errorf("%s is before createdAt %s", updatedAt, createdAt))
	}
	po.createdAt = createdAt
	po.updatedAt = updatedAt
	return nil
}
