package queries

import (
	"context"
	"database/sql"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads non-terminal deliveries with raw SQL
// and attaches the display projection of each status.
type GetActiveDeliveriesQueryHandler struct {
	db        *gorm.DB
	lifecycle services.Lifecycle
}

func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{
		db:        db,
		lifecycle: services.NewLifecycle(),
	}
}

// Handle returns the active deliveries, oldest first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := delivery.ActiveStatuses()
	statuses := make([]string, 0, len(active))
	for _, s := range active {
		statuses = append(statuses, s.String())
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			order_id,
			rider_id,
			status,
			scheduled_date,
			updated_at
		FROM deliveries
		WHERE status IN ?
		ORDER BY created_at, id
	`, statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, orderID uuid.UUID
		var riderID uuid.NullUUID
		var scheduled sql.NullTime

		err = rows.Scan(
			&id,
			&resp.Number,
			&orderID,
			&riderID,
			&resp.Status,
			&scheduled,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if riderID.Valid {
			rid, ridErr := kernel.UUIDFromBytes(riderID.UUID[:])
			if ridErr != nil {
				return nil, ridErr
			}
			resp.RiderID = &rid
		}
		if scheduled.Valid {
			utc := scheduled.Time.UTC()
			resp.ScheduledDate = &utc
		}
		resp.UpdatedAt = resp.UpdatedAt.UTC()

		if resp.Display, err = h.lifecycle.ProjectDisplay(lifecycle.KindDelivery, resp.Status); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
