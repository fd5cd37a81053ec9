package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/deliveryrepo"
	"backoffice/internal/adapters/out/postgres/pgtest"
	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
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

type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

var createdAt = time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "deliveries"))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) newDelivery(number string, at time.Time) *delivery.Delivery {
	scheduled := at.Add(4 * time.Hour)
	d, err := delivery.NewDelivery(kernel.NewUUID(), delivery.Details{
		Number:        number,
		OrderID:       kernel.NewUUID(),
		ScheduledDate: &scheduled,
		Notes:         "leave at door",
	}, at)
	suite.Require().NoError(err)
	return d
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsAggregate() {
	ctx := context.Background()
	original := suite.newDelivery("DEL-1", createdAt)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(original.IsEqual(loaded))
	suite.Equal(delivery.Pending, loaded.Status())
	suite.Nil(loaded.RiderID())
	suite.Nil(loaded.ActualDeliveryDate())
	suite.Require().NotNil(loaded.ScheduledDate())
	suite.True(original.ScheduledDate().Equal(*loaded.ScheduledDate()))
	suite.True(original.OrderID().IsEqual(loaded.OrderID()))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", original.ID(), original)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_CompletedDeliveryKeepsProof() {
	ctx := context.Background()
	d := suite.newDelivery("DEL-2", createdAt)
	suite.Require().NoError(suite.repository.Add(ctx, d))

	riderID := kernel.NewUUID()
	suite.Require().NoError(d.Assign(riderID, createdAt.Add(time.Minute)))
	suite.Require().NoError(d.TransitionTo(delivery.InProgress, createdAt.Add(2*time.Minute)))
	completedAt := createdAt.Add(30 * time.Minute)
	suite.Require().NoError(d.Complete(delivery.Proof{
		Signature: "sig/del-2.png",
		Photos:    []string{"photos/door.jpg", "photos/bag.jpg"},
	}, completedAt))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Completed, loaded.Status())
	suite.Require().NotNil(loaded.RiderID())
	suite.True(riderID.IsEqual(*loaded.RiderID()))
	suite.Require().NotNil(loaded.ActualDeliveryDate())
	suite.True(completedAt.Equal(*loaded.ActualDeliveryDate()))
	suite.Equal("sig/del-2.png", loaded.Proof().Signature)
	suite.Equal([]string{"photos/door.jpg", "photos/bag.jpg"}, loaded.Proof().Photos)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_UnassignClearsRider() {
	ctx := context.Background()
	d := suite.newDelivery("DEL-3", createdAt)
	suite.Require().NoError(d.Assign(kernel.NewUUID(), createdAt))
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(d.Unassign(createdAt.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Pending, loaded.Status())
	suite.Nil(loaded.RiderID())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_NonExistentDelivery_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newDelivery("DEL-4", createdAt))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetFirstPending_ReturnsOldestUnassigned() {
	ctx := context.Background()
	newest := suite.newDelivery("DEL-NEW", createdAt.Add(time.Hour))
	oldest := suite.newDelivery("DEL-OLD", createdAt)
	assigned := suite.newDelivery("DEL-ASSIGNED", createdAt.Add(-time.Hour))
	suite.Require().NoError(assigned.Assign(kernel.NewUUID(), createdAt))
	attached := suite.newDelivery("DEL-ATTACHED", createdAt.Add(-2*time.Hour))
	suite.Require().NoError(attached.AttachRider(kernel.NewUUID(), createdAt))

	for _, d := range []*delivery.Delivery{newest, oldest, assigned, attached} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	first, err := suite.repository.GetFirstPending(ctx)
	suite.Require().NoError(err)
	suite.True(oldest.IsEqual(first))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetFirstPending_NoPending_ReturnsNotFound() {
	first, err := suite.repository.GetFirstPending(context.Background())

	suite.Nil(first)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_NonExistentDelivery_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
