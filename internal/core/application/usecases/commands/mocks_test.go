package commands_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/core/domain/model/rider"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)
	clock = kernel.FixedClock(now)
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, po *purchase.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, po *purchase.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.PurchaseOrder), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetFirstPending(ctx context.Context) (*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetAllAvailable(ctx context.Context) ([]*rider.Rider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

// MockFactory hands out the same MockUoW under every factory interface.
type MockFactory struct {
	mock.Mock
	uow *MockUoW
}

func newFactory(uow *MockUoW) *MockFactory {
	f := &MockFactory{uow: uow}
	f.On("Create").Return().Once()
	return f
}

func (f *MockFactory) create() *MockUoW {
	f.MethodCalled("Create")
	return f.uow
}

type (
	orderFactory    struct{ *MockFactory }
	purchaseFactory struct{ *MockFactory }
	deliveryFactory struct{ *MockFactory }
	riderFactory    struct{ *MockFactory }
	fullFactory     struct{ *MockFactory }
)

func (f orderFactory) Create() commands.OrderUoW { return f.create() }
func (f purchaseFactory) Create() commands.PurchaseOrderUoW { return f.create() }
func (f deliveryFactory) Create() commands.DeliveryUoW { return f.create() }
func (f riderFactory) Create() commands.RiderUoW { return f.create() }
func (f fullFactory) Create() commands.UoW { return f.create() }

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), orderDetails(t), now)
	require.NoError(t, err)
	return o
}

func orderDetails(t *testing.T) order.Details {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Milk 1L", 3,
		kernel.MoneyFromCents(99), kernel.ZeroMoney(), kernel.ZeroMoney())
	require.NoError(t, err)
	addr, err := order.NewAddress("12 Market St", "Leeds", "", "LS1", "UK")
	require.NoError(t, err)
	return order.Details{
		Number:          "ORD-100",
		CustomerID:      kernel.NewUUID(),
		Items:           []order.Item{item},
		ShippingAddress: addr,
		BillingAddress:  addr,
		ShippingCost:    kernel.MoneyFromCents(250),
	}
}

func purchaseDetails(t *testing.T, quantities ...int) purchase.Details {
	t.Helper()
	items := make([]purchase.Item, 0, len(quantities))
	for _, q := range quantities {
		item, err := purchase.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Rice 25kg", q,
			kernel.MoneyFromCents(2500), kernel.ZeroMoney())
		require.NoError(t, err)
		items = append(items, item)
	}
	return purchase.Details{Number: "PO-100", VendorID: kernel.NewUUID(), Items: items}
}

func newPurchaseOrder(t *testing.T, status purchase.Status, quantities ...int) *purchase.PurchaseOrder {
	t.Helper()
	po, err := purchase.RestorePurchaseOrder(kernel.NewUUID(), purchaseDetails(t, quantities...), status, now, now)
	require.NoError(t, err)
	return po
}

func newDelivery(t *testing.T, status delivery.Status, riderID *kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.RestoreDelivery(kernel.NewUUID(),
		delivery.Details{Number: "DEL-100", OrderID: kernel.NewUUID()},
		delivery.State{Status: status, RiderID: riderID, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	return d
}

func newRider(t *testing.T, status rider.Status, rating float64) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(kernel.NewUUID(), rider.Contact{
		Name: "Ada", Phone: "555-0100", VehicleType: "scooter",
	}, status, rating, 0, nil)
	require.NoError(t, err)
	return r
}
