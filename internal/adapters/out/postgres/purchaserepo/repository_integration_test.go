package purchaserepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/pgtest"
	"backoffice/internal/adapters/out/postgres/purchaserepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate lifecycle.EventSource) {
	m.Called(id, aggregate)
}

type PurchaseOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *purchaserepo.GormPurchaseOrderRepository
	tracker    *MockAggregateTracker
}

var createdAt = time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "purchase_order_items", "purchase_orders"))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = purchaserepo.NewGormPurchaseOrderRepository(suite.db, suite.tracker)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) newPurchaseOrder(number string, quantities ...int) *purchase.PurchaseOrder {
	items := make([]purchase.Item, 0, len(quantities))
	for _, qty := range quantities {
		item, err := purchase.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Flour 25kg", qty,
			kernel.MoneyFromCents(1250), kernel.MoneyFromCents(100))
		suite.Require().NoError(err)
		items = append(items, item)
	}

	deliveryDate := createdAt.Add(72 * time.Hour)
	po, err := purchase.NewPurchaseOrder(kernel.NewUUID(), purchase.Details{
		Number:       number,
		VendorID:     kernel.NewUUID(),
		Items:        items,
		DeliveryDate: &deliveryDate,
		Notes:        "dock 3",
	}, createdAt)
	suite.Require().NoError(err)
	return po
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) advance(po *purchase.PurchaseOrder, statuses ...purchase.Status) {
	for i, status := range statuses {
		suite.Require().NoError(po.TransitionTo(status, createdAt.Add(time.Duration(i+1)*time.Hour)))
	}
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsAggregate() {
	ctx := context.Background()
	original := suite.newPurchaseOrder("PO-1", 10, 4)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(original.IsEqual(loaded))
	suite.Equal(purchase.Draft, loaded.Status())
	suite.Equal("dock 3", loaded.Notes())
	suite.Require().NotNil(loaded.DeliveryDate())
	suite.True(original.DeliveryDate().Equal(*loaded.DeliveryDate()))
	suite.Require().Len(loaded.Items(), 2)
	suite.Equal(10, loaded.Items()[0].Quantity())
	suite.Equal(4, loaded.Items()[1].Quantity())
	suite.Equal(original.Total().String(), loaded.Total().String())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", original.ID(), original)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestUpdate_PersistsReceivedQuantities() {
	ctx := context.Background()
	po := suite.newPurchaseOrder("PO-2", 10, 4)
	suite.Require().NoError(suite.repository.Add(ctx, po))

	suite.advance(po, purchase.Sent, purchase.Confirmed)
	receiptAt := createdAt.Add(5 * time.Hour)
	suite.Require().NoError(po.RecordReceipts([]purchase.Receipt{
		{ItemID: po.Items()[0].ID(), Quantity: 6},
	}, receiptAt))
	_, err := po.SettleReceivingStatus(receiptAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, po))

	loaded, err := suite.repository.Get(ctx, po.ID())
	suite.Require().NoError(err)
	suite.Equal(purchase.Partial, loaded.Status())
	suite.Equal(6, loaded.Items()[0].ReceivedQuantity())
	suite.Equal(0, loaded.Items()[1].ReceivedQuantity())
	suite.True(createdAt.Equal(loaded.CreatedAt()))
	suite.True(receiptAt.Equal(loaded.UpdatedAt()))
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestUpdate_MarkFullyReceived() {
	ctx := context.Background()
	po := suite.newPurchaseOrder("PO-3", 3)
	suite.Require().NoError(suite.repository.Add(ctx, po))

	suite.advance(po, purchase.Sent, purchase.Confirmed)
	suite.Require().NoError(po.MarkFullyReceived(createdAt.Add(6 * time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, po))

	loaded, err := suite.repository.Get(ctx, po.ID())
	suite.Require().NoError(err)
	suite.Equal(purchase.Received, loaded.Status())
	suite.True(loaded.IsFullyReceived())

	var itemRows int64
	suite.Require().NoError(suite.db.Model(&purchaserepo.ItemDTO{}).Count(&itemRows).Error)
	suite.Equal(int64(1), itemRows)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentPurchaseOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newPurchaseOrder("PO-4", 1))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var rows int64
	suite.Require().NoError(suite.db.Model(&purchaserepo.PurchaseOrderDTO{}).Count(&rows).Error)
	suite.Zero(rows)
}

func (suite *PurchaseOrderRepositoryIntegrationTestSuite) TestGet_NonExistentPurchaseOrder_ReturnsNotFound() {
	loaded, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(loaded)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPurchaseOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(PurchaseOrderRepositoryIntegrationTestSuite))
}
