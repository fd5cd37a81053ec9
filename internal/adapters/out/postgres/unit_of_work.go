// Package postgres implements the unit of work over GORM.
//
// A unit of work opens one database transaction, hands out repositories bound
// to it and remembers every aggregate they save. When Commit succeeds the
// status changes recorded by those aggregates are handed to the configured
// event publishers. Publishing happens after the data is durable; a failing
// publisher is logged and does not undo the commit.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, logger, kafkaPublisher, metricsRecorder)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.DeliveryRepository().Update(ctx, d); err != nil {
//	    return err
//	}
//	if err := uow.RiderRepository().Update(ctx, r); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"log/slog"

	"backoffice/internal/adapters/out/postgres/deliveryrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/purchaserepo"
	"backoffice/internal/adapters/out/postgres/riderrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate saved during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate lifecycle.EventSource
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db         *gorm.DB
	logger     *slog.Logger
	publishers []ports.EventPublisher
}

// NewGormUnitOfWorkFactory creates a factory. Publishers are called in order
// after every successful commit.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	logger *slog.Logger,
	publishers ...ports.EventPublisher,
) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:         db,
		logger:     logger.With("component", "unit_of_work"),
		publishers: publishers,
	}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		publishers:        f.publishers,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is a single business transaction.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	publishers        []ports.EventPublisher
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it again while one is open does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the changes durable and then publishes the recorded events.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publish(ctx, uow.drainEvents())
	return nil
}

// Rollback discards the transaction and forgets the tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return purchaserepo.NewGormPurchaseOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RiderRepository() ports.RiderRepository {
	return riderrepo.NewGormRiderRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories for every aggregate they save.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate lifecycle.EventSource) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the open transaction, or the pool for reads outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// drainEvents collects and clears the events of every tracked aggregate.
// An aggregate saved twice contributes its events once.
func (uow *GormUnitOfWork) drainEvents() []lifecycle.StatusChanged {
	var events []lifecycle.StatusChanged
	for _, tracked := range uow.trackedAggregates {
		events = append(events, tracked.Aggregate.DomainEvents()...)
		tracked.Aggregate.ClearDomainEvents()
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return events
}

func (uow *GormUnitOfWork) publish(ctx context.Context, events []lifecycle.StatusChanged) {
	if len(events) == 0 {
		return
	}
	for _, publisher := range uow.publishers {
		if err := publisher.Publish(ctx, events...); err != nil {
			uow.logger.ErrorContext(ctx, "failed to publish status changes",
				"events", len(events),
				"error", err,
			)
		}
	}
}
