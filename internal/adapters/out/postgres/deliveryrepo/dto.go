// Package deliveryrepo persists deliveries with GORM.
package deliveryrepo

import (
	"time"

	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the row of the deliveries table. Photo references are
// stored as a JSON array.
type DeliveryDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number             string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	OrderID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	RiderID            *uuid.UUID `gorm:"type:uuid;index"`
	Status             string     `gorm:"type:varchar(32);not null;index"`
	ScheduledDate      *time.Time `gorm:"type:timestamptz"`
	ActualDeliveryDate *time.Time `gorm:"type:timestamptz"`
	Notes              string     `gorm:"type:text"`
	Signature          string     `gorm:"type:varchar(512)"`
	Photos             []string   `gorm:"type:text;serializer:json"`
	CreatedAt          time.Time  `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt          time.Time  `gorm:"not null;autoUpdateTime:false"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var riderID *uuid.UUID
	if id := d.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	proof := d.Proof()
	return DeliveryDTO{
		ID:                 d.ID().Bytes(),
		Number:             d.Number(),
		OrderID:            d.OrderID().Bytes(),
		RiderID:            riderID,
		Status:             d.Status().String(),
		ScheduledDate:      d.ScheduledDate(),
		ActualDeliveryDate: d.ActualDeliveryDate(),
		Notes:              d.Notes(),
		Signature:          proof.Signature,
		Photos:             proof.Photos,
		CreatedAt:          d.CreatedAt(),
		UpdatedAt:          d.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, delivery.Details{
		Number:        dto.Number,
		OrderID:       orderID,
		ScheduledDate: dto.ScheduledDate,
		Notes:         dto.Notes,
	}, delivery.State{
		Status:             status,
		RiderID:            riderID,
		ActualDeliveryDate: dto.ActualDeliveryDate,
		Proof:              delivery.Proof{Signature: dto.Signature, Photos: dto.Photos},
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}
