// Package riderrepo persists riders with GORM.
package riderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

type RiderDTO struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name            string      `gorm:"type:varchar(255);not null"`
	Phone           string      `gorm:"type:varchar(64);not null"`
	Email           string      `gorm:"type:varchar(255)"`
	VehicleType     string      `gorm:"type:varchar(32);not null"`
	VehicleNumber   string      `gorm:"type:varchar(32)"`
	Status          string      `gorm:"type:varchar(32);not null;index"`
	Rating          float64     `gorm:"type:double precision;not null;default:0"`
	TotalDeliveries int         `gorm:"not null;default:0"`
	Location        LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

// LocationDTO holds the last reported position; all columns are NULL until
// the rider reports one.
type LocationDTO struct {
	Latitude    *float64   `gorm:"type:double precision"`
	Longitude   *float64   `gorm:"type:double precision"`
	LastUpdated *time.Time `gorm:"type:timestamptz"`
}

func fromDomain(r *rider.Rider) RiderDTO {
	var location LocationDTO
	if loc := r.Location(); loc != nil {
		lat, lon, updated := loc.Latitude(), loc.Longitude(), loc.LastUpdated()
		location = LocationDTO{
			Latitude:    &lat,
			Longitude:   &lon,
			LastUpdated: &updated,
		}
	}

	return RiderDTO{
		ID:              r.ID().Bytes(),
		Name:            r.Name(),
		Phone:           r.Phone(),
		Email:           r.Email(),
		VehicleType:     r.VehicleType(),
		VehicleNumber:   r.VehicleNumber(),
		Status:          r.Status().String(),
		Rating:          r.Rating(),
		TotalDeliveries: r.TotalDeliveries(),
		Location:        location,
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := rider.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoLocation
	if dto.Location.Latitude != nil && dto.Location.Longitude != nil && dto.Location.LastUpdated != nil {
		loc, locErr := kernel.NewGeoLocation(*dto.Location.Latitude, *dto.Location.Longitude, *dto.Location.LastUpdated)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return rider.RestoreRider(id, rider.Contact{
		Name:          dto.Name,
		Phone:         dto.Phone,
		Email:         dto.Email,
		VehicleType:   dto.VehicleType,
		VehicleNumber: dto.VehicleNumber,
	}, status, dto.Rating, dto.TotalDeliveries, location)
}
