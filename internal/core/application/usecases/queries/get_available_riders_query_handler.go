package queries

import (
	"context"
	"database/sql"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/rider"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle returns available riders in dispatch order: best rating first, then
// the most completed deliveries.
func (h GetAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRidersQuery,
) ([]GetAvailableRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetAvailableRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			vehicle_type,
			rating,
			total_deliveries,
			location_latitude,
			location_longitude,
			location_last_updated
		FROM riders
		WHERE status = ?
		ORDER BY rating DESC, total_deliveries DESC, id
	`, rider.Available.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableRidersQueryResponse
		var id uuid.UUID
		var latitude, longitude sql.NullFloat64
		var lastUpdated sql.NullTime

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.VehicleType,
			&resp.Rating,
			&resp.TotalDeliveries,
			&latitude,
			&longitude,
			&lastUpdated,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		if latitude.Valid && longitude.Valid && lastUpdated.Valid {
			location, locErr := kernel.NewGeoLocation(latitude.Float64, longitude.Float64, lastUpdated.Time.UTC())
			if locErr != nil {
				return nil, locErr
			}
			resp.Location = &location
		}
		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
