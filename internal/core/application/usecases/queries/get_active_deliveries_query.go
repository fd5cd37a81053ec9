// Package queries contains the read side: guarded query objects and handlers
// that project rows straight from SQL into read models.
package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/pkg/guard"
)

var (
	ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
		"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
	)
)

// GetActiveDeliveriesQuery lists every delivery that has not reached a
// terminal status, for the delivery board.
//
// Example:
//
//	handler := NewGetActiveDeliveriesQueryHandler(db)
//	deliveries, err := handler.Handle(ctx, NewGetActiveDeliveriesQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to load delivery board: %w", err)
//	}
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is one row of the delivery board.
type GetActiveDeliveriesQueryResponse struct {
	ID            kernel.UUID
	Number        string
	OrderID       kernel.UUID
	RiderID       *kernel.UUID
	Status        string
	Display       lifecycle.Display
	ScheduledDate *time.Time
	UpdatedAt     time.Time
}
