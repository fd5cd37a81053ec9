package purchase_test

import (
	"math"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

func mustItem(t *testing.T, qty int) purchase.Item {
	t.Helper()
	item, err := purchase.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Basmati rice 5kg", qty,
		kernel.MoneyFromCents(1250), kernel.MoneyFromCents(100))
	require.NoError(t, err)
	return item
}

func newPurchaseOrder(t *testing.T, quantities ...int) *purchase.PurchaseOrder {
	t.Helper()
	items := make([]purchase.Item, 0, len(quantities))
	for _, q := range quantities {
		items = append(items, mustItem(t, q))
	}
	po, err := purchase.NewPurchaseOrder(kernel.NewUUID(), purchase.Details{
		Number:   "PO-2024-001",
		VendorID: kernel.NewUUID(),
		Items:    items,
	}, createdAt)
	require.NoError(t, err)
	return po
}

func confirmed(t *testing.T, quantities ...int) *purchase.PurchaseOrder {
	t.Helper()
	po := newPurchaseOrder(t, quantities...)
	require.NoError(t, po.TransitionTo(purchase.Sent, createdAt.Add(time.Hour)))
	require.NoError(t, po.TransitionTo(purchase.Confirmed, createdAt.Add(2*time.Hour)))
	po.ClearDomainEvents()
	return po
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("creates a draft", func(t *testing.T) {
		po := newPurchaseOrder(t, 10, 4)

		require.NoError(t, po.Validate())
		assert.Equal(t, purchase.Draft, po.Status())
		assert.Nil(t, po.DeliveryDate())
		// 10×12.50 + 1.00 + 4×12.50 + 1.00
		assert.Equal(t, "177.00", po.Total().String())
	})

	t.Run("copies the delivery date", func(t *testing.T) {
		date := createdAt.Add(72 * time.Hour)
		po, err := purchase.NewPurchaseOrder(kernel.NewUUID(), purchase.Details{
			Number: "PO-1", VendorID: kernel.NewUUID(), Items: []purchase.Item{mustItem(t, 1)}, DeliveryDate: &date,
		}, createdAt)
		require.NoError(t, err)

		date = date.Add(time.Hour)
		assert.Equal(t, createdAt.Add(72*time.Hour), *po.DeliveryDate())
	})

	t.Run("rejects items with goods already received", func(t *testing.T) {
		item, err := purchase.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), "oil", 5,
			kernel.MoneyFromCents(100), kernel.ZeroMoney(), 2)
		require.NoError(t, err)

		_, err = purchase.NewPurchaseOrder(kernel.NewUUID(), purchase.Details{
			Number: "PO-1", VendorID: kernel.NewUUID(), Items: []purchase.Item{item},
		}, createdAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("joins validation errors", func(t *testing.T) {
		_, err := purchase.NewPurchaseOrder(kernel.UUID{}, purchase.Details{}, createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "number")
		assert.Contains(t, err.Error(), "vendorID")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestRestoreItem(t *testing.T) {
	_, err := purchase.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), "oil", 5,
		kernel.MoneyFromCents(100), kernel.ZeroMoney(), 6)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = purchase.RestoreItem(kernel.NewUUID(), kernel.NewUUID(), "oil", 5,
		kernel.MoneyFromCents(100), kernel.ZeroMoney(), -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestPurchaseOrder_Receipts(t *testing.T) {
	t.Run("receipt above ordered quantity fails, exact receipt then received succeeds", func(t *testing.T) {
		po := confirmed(t, 10)
		itemID := po.Items()[0].ID()
		now := createdAt.Add(3 * time.Hour)

		err := po.RecordReceipts([]purchase.Receipt{{ItemID: itemID, Quantity: 12}}, now)
		require.ErrorIs(t, err, lifecycle.ErrReceivedQuantityExceedsOrdered)
		var exceeded *lifecycle.ReceivedQuantityExceedsOrderedError
		require.ErrorAs(t, err, &exceeded)
		assert.Equal(t, 10, exceeded.Ordered)
		assert.Equal(t, 12, exceeded.Requested)
		assert.Equal(t, 0, po.Items()[0].ReceivedQuantity())

		require.NoError(t, po.RecordReceipts([]purchase.Receipt{{ItemID: itemID, Quantity: 10}}, now))
		require.NoError(t, po.TransitionTo(purchase.Received, now))
		assert.Equal(t, purchase.Received, po.Status())
	})

	t.Run("batch is all or nothing", func(t *testing.T) {
		po := confirmed(t, 5, 5)
		items := po.Items()
		before := po.UpdatedAt()

		err := po.RecordReceipts([]purchase.Receipt{
			{ItemID: items[0].ID(), Quantity: 3},
			{ItemID: items[1].ID(), Quantity: 3},
			{ItemID: items[1].ID(), Quantity: 3},
		}, createdAt.Add(5*time.Hour))

		require.ErrorIs(t, err, lifecycle.ErrReceivedQuantityExceedsOrdered)
		for _, item := range po.Items() {
			assert.Equal(t, 0, item.ReceivedQuantity())
		}
		assert.Equal(t, before, po.UpdatedAt())
	})

	t.Run("receipts accumulate", func(t *testing.T) {
		po := confirmed(t, 5)
		id := po.Items()[0].ID()

		require.NoError(t, po.RecordReceipts([]purchase.Receipt{{ItemID: id, Quantity: 2}}, createdAt.Add(3*time.Hour)))
		require.NoError(t, po.RecordReceipts([]purchase.Receipt{{ItemID: id, Quantity: 3}}, createdAt.Add(4*time.Hour)))

		item, ok := po.Item(id)
		require.True(t, ok)
		assert.True(t, item.IsFullyReceived())
		assert.Equal(t, 0, item.Outstanding())
	})

	t.Run("unknown item", func(t *testing.T) {
		po := confirmed(t, 5)
		err := po.RecordReceipts([]purchase.Receipt{{ItemID: kernel.NewUUID(), Quantity: 1}}, createdAt)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("non positive quantity", func(t *testing.T) {
		po := confirmed(t, 5)
		err := po.RecordReceipts([]purchase.Receipt{{ItemID: po.Items()[0].ID(), Quantity: 0}}, createdAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("draft orders do not receive goods", func(t *testing.T) {
		po := newPurchaseOrder(t, 5)
		err := po.RecordReceipts([]purchase.Receipt{{ItemID: po.Items()[0].ID(), Quantity: 1}}, createdAt)
		require.ErrorIs(t, err, purchase.ErrNotReceiving)
		require.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	})
}

func TestPurchaseOrder_ReceiptBounds(t *testing.T) {
	type line struct {
		item int
		qty  int
	}

	tests := []struct {
		name     string
		ordered  []int
		earlier  []line
		batch    []line
		wantErr  error
		received []int
	}{
		{
			name:     "huge quantity after a partial receipt",
			ordered:  []int{10},
			earlier:  []line{{0, 5}},
			batch:    []line{{0, math.MaxInt}},
			wantErr:  lifecycle.ErrReceivedQuantityExceedsOrdered,
			received: []int{5},
		},
		{
			name:     "huge quantity on an untouched item",
			ordered:  []int{10},
			batch:    []line{{0, math.MaxInt}},
			wantErr:  lifecycle.ErrReceivedQuantityExceedsOrdered,
			received: []int{0},
		},
		{
			name:     "same item repeated past the ordered amount",
			ordered:  []int{6},
			batch:    []line{{0, 2}, {0, 2}, {0, 2}, {0, 1}},
			wantErr:  lifecycle.ErrReceivedQuantityExceedsOrdered,
			received: []int{0},
		},
		{
			name:     "same item repeated up to the ordered amount",
			ordered:  []int{6},
			batch:    []line{{0, 2}, {0, 2}, {0, 2}},
			received: []int{6},
		},
		{
			name:     "bad later line discards the earlier lines",
			ordered:  []int{4, 4},
			earlier:  []line{{1, 3}},
			batch:    []line{{0, 4}, {1, 2}},
			wantErr:  lifecycle.ErrReceivedQuantityExceedsOrdered,
			received: []int{0, 3},
		},
		{
			name:     "non positive later line discards the earlier lines",
			ordered:  []int{4, 4},
			batch:    []line{{0, 1}, {1, -1}},
			wantErr:  errs.ErrValueIsInvalid,
			received: []int{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			po := confirmed(t, tt.ordered...)
			items := po.Items()
			receipts := func(lines []line) []purchase.Receipt {
				out := make([]purchase.Receipt, 0, len(lines))
				for _, l := range lines {
					out = append(out, purchase.Receipt{ItemID: items[l.item].ID(), Quantity: l.qty})
				}
				return out
			}
			if len(tt.earlier) > 0 {
				require.NoError(t, po.RecordReceipts(receipts(tt.earlier), createdAt.Add(3*time.Hour)))
			}

			err := po.RecordReceipts(receipts(tt.batch), createdAt.Add(4*time.Hour))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for i, item := range po.Items() {
				assert.Equal(t, tt.received[i], item.ReceivedQuantity())
				assert.GreaterOrEqual(t, item.ReceivedQuantity(), 0)
				assert.LessOrEqual(t, item.ReceivedQuantity(), item.Quantity())
			}
		})
	}
}

func TestPurchaseOrder_Guards(t *testing.T) {
	t.Run("received requires every item in full", func(t *testing.T) {
		po := confirmed(t, 10, 2)
		assert.False(t, po.CanTransitionTo(purchase.Received))

		err := po.TransitionTo(purchase.Received, createdAt.Add(3*time.Hour))
		require.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "fully received")
		assert.Equal(t, purchase.Confirmed, po.Status())
	})

	t.Run("partial requires some goods", func(t *testing.T) {
		po := confirmed(t, 10, 2)
		require.ErrorIs(t, po.TransitionTo(purchase.Partial, createdAt), lifecycle.ErrInvalidTransition)

		items := po.Items()
		require.NoError(t, po.RecordReceipts([]purchase.Receipt{{ItemID: items[1].ID(), Quantity: 2}}, createdAt.Add(3*time.Hour)))
		assert.True(t, po.CanTransitionTo(purchase.Partial))
		require.NoError(t, po.TransitionTo(purchase.Partial, createdAt.Add(3*time.Hour)))
	})

	t.Run("partial is rejected once everything arrived", func(t *testing.T) {
		po := confirmed(t, 1)
		require.NoError(t, po.RecordReceipts([]purchase.Receipt{{ItemID: po.Items()[0].ID(), Quantity: 1}}, createdAt))
		require.ErrorIs(t, po.TransitionTo(purchase.Partial, createdAt), lifecycle.ErrInvalidTransition)
	})

	t.Run("cancel only before confirmation", func(t *testing.T) {
		po := confirmed(t, 1)
		require.ErrorIs(t, po.TransitionTo(purchase.Cancelled, createdAt), lifecycle.ErrInvalidTransition)

		draft := newPurchaseOrder(t, 1)
		require.NoError(t, draft.TransitionTo(purchase.Cancelled, createdAt.Add(time.Minute)))
		assert.True(t, draft.Status().IsTerminal())
	})
}

func TestPurchaseOrder_SettleReceivingStatus(t *testing.T) {
	po := confirmed(t, 4, 4)
	items := po.Items()
	now := createdAt.Add(3 * time.Hour)

	changed, err := po.SettleReceivingStatus(now)
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, po.RecordReceipts([]purchase.Receipt{{ItemID: items[0].ID(), Quantity: 4}}, now))
	changed, err = po.SettleReceivingStatus(now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, purchase.Partial, po.Status())

	changed, err = po.SettleReceivingStatus(now)
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, po.RecordReceipts([]purchase.Receipt{{ItemID: items[1].ID(), Quantity: 4}}, now))
	changed, err = po.SettleReceivingStatus(now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, purchase.Received, po.Status())

	events := po.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "partial", events[0].To)
	assert.Equal(t, "received", events[1].To)
}

func TestPurchaseOrder_MarkFullyReceived(t *testing.T) {
	t.Run("books outstanding quantities", func(t *testing.T) {
		po := confirmed(t, 7, 3)
		now := createdAt.Add(4 * time.Hour)

		require.NoError(t, po.MarkFullyReceived(now))

		assert.Equal(t, purchase.Received, po.Status())
		assert.Equal(t, now, po.UpdatedAt())
		for _, item := range po.Items() {
			assert.Equal(t, item.Quantity(), item.ReceivedQuantity())
		}
	})

	t.Run("not allowed from sent", func(t *testing.T) {
		po := newPurchaseOrder(t, 7)
		require.NoError(t, po.TransitionTo(purchase.Sent, createdAt))

		err := po.MarkFullyReceived(createdAt.Add(time.Hour))

		require.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
		assert.Equal(t, 0, po.Items()[0].ReceivedQuantity())
	})
}

func TestPurchaseOrder_Clone(t *testing.T) {
	po := confirmed(t, 3)
	c := po.Clone()

	require.NoError(t, c.MarkFullyReceived(createdAt.Add(time.Hour)))

	assert.Equal(t, purchase.Confirmed, po.Status())
	assert.Equal(t, 0, po.Items()[0].ReceivedQuantity())
	assert.Empty(t, po.DomainEvents())
}
