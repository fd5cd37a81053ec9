// Package purchaserepo persists purchase orders and their received quantities with GORM.
package purchaserepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseOrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number       string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	VendorID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Items        []ItemDTO       `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	Status       string          `gorm:"type:varchar(32);not null;index"`
	DeliveryDate *time.Time      `gorm:"type:timestamptz"`
	Notes        string          `gorm:"type:text"`
	Total        decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime:false"`
}

func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// ItemDTO is one purchase order line with the quantity received so far.
type ItemDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position         int             `gorm:"not null"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName      string          `gorm:"type:varchar(255)"`
	Quantity         int             `gorm:"not null"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric;not null"`
	Tax              decimal.Decimal `gorm:"type:numeric;not null"`
	ReceivedQuantity int             `gorm:"not null;default:0"`
}

func (ItemDTO) TableName() string {
	return "purchase_order_items"
}

func fromDomain(po *purchase.PurchaseOrder) PurchaseOrderDTO {
	poID := po.ID().Bytes()
	items := make([]ItemDTO, 0, len(po.Items()))
	for i, item := range po.Items() {
		items = append(items, ItemDTO{
			ID:               item.ID().Bytes(),
			PurchaseOrderID:  poID,
			Position:         i,
			ProductID:        item.ProductID().Bytes(),
			ProductName:      item.ProductName(),
			Quantity:         item.Quantity(),
			UnitPrice:        item.UnitPrice().Decimal(),
			Tax:              item.Tax().Decimal(),
			ReceivedQuantity: item.ReceivedQuantity(),
		})
	}

	return PurchaseOrderDTO{
		ID:           poID,
		Number:       po.Number(),
		VendorID:     po.VendorID().Bytes(),
		Items:        items,
		Status:       po.Status().String(),
		DeliveryDate: po.DeliveryDate(),
		Notes:        po.Notes(),
		Total:        po.Total().Decimal(),
		CreatedAt:    po.CreatedAt(),
		UpdatedAt:    po.UpdatedAt(),
	}
}

func toDomain(dto PurchaseOrderDTO) (*purchase.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	items := make([]purchase.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := purchase.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return purchase.RestorePurchaseOrder(id, purchase.Details{
		Number:       dto.Number,
		VendorID:     vendorID,
		Items:        items,
		DeliveryDate: dto.DeliveryDate,
		Notes:        dto.Notes,
	}, status, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto ItemDTO) (purchase.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return purchase.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return purchase.Item{}, err
	}

	return purchase.RestoreItem(id, productID, dto.ProductName, dto.Quantity,
		kernel.NewMoney(dto.UnitPrice), kernel.NewMoney(dto.Tax), dto.ReceivedQuantity)
}
