package riderrepo_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/pgtest"
	"backoffice/internal/adapters/out/postgres/riderrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/rider"
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

type RiderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *riderrepo.GormRiderRepository
	tracker    *MockAggregateTracker
}

var now = time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)

func (suite *RiderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *RiderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "riders"))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = riderrepo.NewGormRiderRepository(suite.db, suite.tracker)
}

func (suite *RiderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RiderRepositoryIntegrationTestSuite) newRider(name string, status rider.Status, rating float64, total int) *rider.Rider {
	r, err := rider.RestoreRider(kernel.NewUUID(), rider.Contact{
		Name:        name,
		Phone:       "+44 7700 900123",
		Email:       "rider@example.com",
		VehicleType: "bike",
	}, status, rating, total, nil)
	suite.Require().NoError(err)
	return r
}

func (suite *RiderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsAggregate() {
	ctx := context.Background()
	original := suite.newRider("Sam", rider.Available, 4.5, 12)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(original.IsEqual(loaded))
	suite.Equal("Sam", loaded.Name())
	suite.Equal("bike", loaded.VehicleType())
	suite.Equal(rider.Available, loaded.Status())
	suite.InDelta(4.5, loaded.Rating(), 1e-9)
	suite.Equal(12, loaded.TotalDeliveries())
	suite.Nil(loaded.Location())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", original.ID(), original)
}

func (suite *RiderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndLocation() {
	ctx := context.Background()
	r := suite.newRider("Alex", rider.Available, 3, 0)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	location, err := kernel.NewGeoLocation(51.4545, -2.5879, now)
	suite.Require().NoError(err)
	suite.Require().NoError(r.UpdateLocation(location))
	suite.Require().NoError(r.Occupy(now))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(rider.Busy, loaded.Status())
	suite.Require().NotNil(loaded.Location())
	suite.InDelta(51.4545, loaded.Location().Latitude(), 1e-9)
	suite.InDelta(-2.5879, loaded.Location().Longitude(), 1e-9)
	suite.True(now.Equal(loaded.Location().LastUpdated()))
}

func (suite *RiderRepositoryIntegrationTestSuite) TestUpdate_NonExistentRider_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newRider("Ghost", rider.Offline, 0, 0))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGetAllAvailable_OrdersByRatingThenDeliveries() {
	ctx := context.Background()
	veteran := suite.newRider("Veteran", rider.Available, 4.8, 300)
	rookie := suite.newRider("Rookie", rider.Available, 4.8, 3)
	average := suite.newRider("Average", rider.Available, 3.9, 50)
	busy := suite.newRider("Busy", rider.Busy, 5, 90)
	offline := suite.newRider("Offline", rider.Offline, 5, 90)

	for _, r := range []*rider.Rider{average, rookie, busy, veteran, offline} {
		suite.Require().NoError(suite.repository.Add(ctx, r))
	}

	riders, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(riders, 3)
	suite.True(veteran.IsEqual(riders[0]))
	suite.True(rookie.IsEqual(riders[1]))
	suite.True(average.IsEqual(riders[2]))
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGetAllAvailable_Empty() {
	riders, err := suite.repository.GetAllAvailable(context.Background())

	suite.Require().NoError(err)
	suite.Empty(riders)
}

func TestRiderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RiderRepositoryIntegrationTestSuite))
}
