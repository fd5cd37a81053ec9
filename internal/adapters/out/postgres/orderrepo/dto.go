// Package orderrepo persists sales orders and their line items with GORM.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Total is derived from the
// aggregate on every write and never read back.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number          string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Items           []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress AddressDTO      `gorm:"embedded;embeddedPrefix:shipping_"`
	BillingAddress  AddressDTO      `gorm:"embedded;embeddedPrefix:billing_"`
	ShippingMethod  string          `gorm:"type:varchar(64)"`
	ShippingCost    decimal.Decimal `gorm:"type:numeric;not null"`
	Tax             decimal.Decimal `gorm:"type:numeric;not null"`
	Discount        decimal.Decimal `gorm:"type:numeric;not null"`
	Total           decimal.Decimal `gorm:"type:numeric;not null"`
	Status          string          `gorm:"type:varchar(32);not null;index"`
	PaymentStatus   string          `gorm:"type:varchar(32);not null"`
	PaymentMethod   string          `gorm:"type:varchar(64)"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(128)"`
	State      string `gorm:"type:varchar(128)"`
	PostalCode string `gorm:"type:varchar(32)"`
	Country    string `gorm:"type:varchar(64)"`
}

// ItemDTO is one order line. Position keeps the line order of the aggregate.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(255)"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric;not null"`
	Tax         decimal.Decimal `gorm:"type:numeric;not null"`
	Discount    decimal.Decimal `gorm:"type:numeric;not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			Position:    i,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Decimal(),
			Tax:         item.Tax().Decimal(),
			Discount:    item.Discount().Decimal(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		Number:          aggregate.Number(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Items:           items,
		ShippingAddress: addressFromDomain(aggregate.ShippingAddress()),
		BillingAddress:  addressFromDomain(aggregate.BillingAddress()),
		ShippingMethod:  aggregate.ShippingMethod(),
		ShippingCost:    aggregate.ShippingCost().Decimal(),
		Tax:             aggregate.Tax().Decimal(),
		Discount:        aggregate.Discount().Decimal(),
		Total:           aggregate.Total().Decimal(),
		Status:          aggregate.Status().String(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		PaymentMethod:   aggregate.PaymentMethod(),
		Notes:           aggregate.Notes(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

func addressFromDomain(a order.Address) AddressDTO {
	return AddressDTO{
		Street:     a.Street(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shipping, err := addressToDomain(dto.ShippingAddress)
	if err != nil {
		return nil, err
	}
	billing, err := addressToDomain(dto.BillingAddress)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Details{
		Number:          dto.Number,
		CustomerID:      customerID,
		Items:           items,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		ShippingMethod:  dto.ShippingMethod,
		ShippingCost:    kernel.NewMoney(dto.ShippingCost),
		Tax:             kernel.NewMoney(dto.Tax),
		Discount:        kernel.NewMoney(dto.Discount),
		PaymentMethod:   dto.PaymentMethod,
		Notes:           dto.Notes,
	}, status, paymentStatus, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, productID, dto.ProductName, dto.Quantity,
		kernel.NewMoney(dto.UnitPrice), kernel.NewMoney(dto.Tax), kernel.NewMoney(dto.Discount))
}

func addressToDomain(dto AddressDTO) (order.Address, error) {
	return order.NewAddress(dto.Street, dto.City, dto.State, dto.PostalCode, dto.Country)
}
