package http

import (
	"errors"
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/lifecycle"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/core/domain/model/rider"
	"backoffice/internal/pkg/errs"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	ID string `json:"id"`
}

type AddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

func (a AddressRequest) toDomain() (order.Address, error) {
	return order.NewAddress(a.Street, a.City, a.State, a.PostalCode, a.Country)
}

type OrderItemRequest struct {
	ProductID   string `json:"productId" validate:"required,uuid"`
	ProductName string `json:"productName" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0,lte=1000000"`
	UnitPrice   string `json:"unitPrice" validate:"required"`
	Tax         string `json:"tax"`
	Discount    string `json:"discount"`
}

type NewOrderRequest struct {
	Number          string             `json:"number" validate:"required"`
	CustomerID      string             `json:"customerId" validate:"required,uuid"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress AddressRequest     `json:"shippingAddress" validate:"required"`
	BillingAddress  *AddressRequest    `json:"billingAddress"`
	ShippingMethod  string             `json:"shippingMethod"`
	ShippingCost    string             `json:"shippingCost"`
	Tax             string             `json:"tax"`
	Discount        string             `json:"discount"`
	PaymentMethod   string             `json:"paymentMethod"`
	Notes           string             `json:"notes"`
}

// toDetails converts the request. A missing billing address defaults to the
// shipping address.
func (r NewOrderRequest) toDetails() (order.Details, error) {
	customerID, err := kernel.UUIDFromString(r.CustomerID)
	if err != nil {
		return order.Details{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}

	items := make([]order.Item, 0, len(r.Items))
	for _, it := range r.Items {
		item, itemErr := it.toDomain()
		if itemErr != nil {
			return order.Details{}, itemErr
		}
		items = append(items, item)
	}

	shipping, err := r.ShippingAddress.toDomain()
	if err != nil {
		return order.Details{}, err
	}
	billing := shipping
	if r.BillingAddress != nil {
		if billing, err = r.BillingAddress.toDomain(); err != nil {
			return order.Details{}, err
		}
	}

	shippingCost, shippingErr := parseMoney("shippingCost", r.ShippingCost)
	tax, taxErr := parseMoney("tax", r.Tax)
	discount, discountErr := parseMoney("discount", r.Discount)
	if err = errors.Join(shippingErr, taxErr, discountErr); err != nil {
		return order.Details{}, err
	}

	return order.Details{
		Number:          r.Number,
		CustomerID:      customerID,
		Items:           items,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		ShippingMethod:  r.ShippingMethod,
		ShippingCost:    shippingCost,
		Tax:             tax,
		Discount:        discount,
		PaymentMethod:   r.PaymentMethod,
		Notes:           r.Notes,
	}, nil
}

func (it OrderItemRequest) toDomain() (order.Item, error) {
	productID, err := kernel.UUIDFromString(it.ProductID)
	if err != nil {
		return order.Item{}, errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	unitPrice, priceErr := parseMoney("unitPrice", it.UnitPrice)
	tax, taxErr := parseMoney("tax", it.Tax)
	discount, discountErr := parseMoney("discount", it.Discount)
	if err = errors.Join(priceErr, taxErr, discountErr); err != nil {
		return order.Item{}, err
	}
	return order.NewItem(kernel.NewUUID(), productID, it.ProductName, it.Quantity, unitPrice, tax, discount)
}

type PurchaseOrderItemRequest struct {
	ProductID   string `json:"productId" validate:"required,uuid"`
	ProductName string `json:"productName" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0,lte=1000000"`
	UnitPrice   string `json:"unitPrice" validate:"required"`
	Tax         string `json:"tax"`
}

type NewPurchaseOrderRequest struct {
	Number       string                     `json:"number" validate:"required"`
	VendorID     string                     `json:"vendorId" validate:"required,uuid"`
	Items        []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryDate *time.Time                 `json:"deliveryDate"`
	Notes        string                     `json:"notes"`
}

func (r NewPurchaseOrderRequest) toDetails() (purchase.Details, error) {
	vendorID, err := kernel.UUIDFromString(r.VendorID)
	if err != nil {
		return purchase.Details{}, errs.NewValueIsInvalidErrorWithCause("vendorId", err)
	}

	items := make([]purchase.Item, 0, len(r.Items))
	for _, it := range r.Items {
		productID, idErr := kernel.UUIDFromString(it.ProductID)
		if idErr != nil {
			return purchase.Details{}, errs.NewValueIsInvalidErrorWithCause("productId", idErr)
		}
		unitPrice, priceErr := parseMoney("unitPrice", it.UnitPrice)
		tax, taxErr := parseMoney("tax", it.Tax)
		if err = errors.Join(priceErr, taxErr); err != nil {
			return purchase.Details{}, err
		}
		item, itemErr := purchase.NewItem(kernel.NewUUID(), productID, it.ProductName, it.Quantity, unitPrice, tax)
		if itemErr != nil {
			return purchase.Details{}, itemErr
		}
		items = append(items, item)
	}

	return purchase.Details{
		Number:       r.Number,
		VendorID:     vendorID,
		Items:        items,
		DeliveryDate: r.DeliveryDate,
		Notes:        r.Notes,
	}, nil
}

type NewDeliveryRequest struct {
	Number        string     `json:"number" validate:"required"`
	OrderID       string     `json:"orderId" validate:"required,uuid"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Notes         string     `json:"notes"`
}

func (r NewDeliveryRequest) toDetails() (delivery.Details, error) {
	orderID, err := kernel.UUIDFromString(r.OrderID)
	if err != nil {
		return delivery.Details{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return delivery.Details{
		Number:        r.Number,
		OrderID:       orderID,
		ScheduledDate: r.ScheduledDate,
		Notes:         r.Notes,
	}, nil
}

type NewRiderRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	VehicleType   string `json:"vehicleType" validate:"required"`
	VehicleNumber string `json:"vehicleNumber"`
}

func (r NewRiderRequest) toContact() rider.Contact {
	return rider.Contact{
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		VehicleType:   r.VehicleType,
		VehicleNumber: r.VehicleNumber,
	}
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ReceiptRequest struct {
	ItemID   string `json:"itemId" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"gt=0,lte=1000000"`
}

type ReceiptsRequest struct {
	Items []ReceiptRequest `json:"items" validate:"required,min=1,dive"`
}

func (r ReceiptsRequest) toDomain() ([]purchase.Receipt, error) {
	receipts := make([]purchase.Receipt, 0, len(r.Items))
	for _, it := range r.Items {
		itemID, err := kernel.UUIDFromString(it.ItemID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("itemId", err)
		}
		receipts = append(receipts, purchase.Receipt{ItemID: itemID, Quantity: it.Quantity})
	}
	return receipts, nil
}

type AssignRiderRequest struct {
	RiderID string `json:"riderId" validate:"required,uuid"`
}

type CompleteDeliveryRequest struct {
	Signature string   `json:"signature"`
	Photos    []string `json:"photos" validate:"dive,required"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type RatingRequest struct {
	Rating *float64 `json:"rating" validate:"required,gte=0,lte=5"`
}

type StatusDisplayResponse struct {
	Kind    string            `json:"kind"`
	Status  string            `json:"status"`
	Display lifecycle.Display `json:"display"`
}

type ActiveDeliveryResponse struct {
	ID            string            `json:"id"`
	Number        string            `json:"number"`
	OrderID       string            `json:"orderId"`
	RiderID       *string           `json:"riderId,omitempty"`
	Status        string            `json:"status"`
	Display       lifecycle.Display `json:"display"`
	ScheduledDate *time.Time        `json:"scheduledDate,omitempty"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func newActiveDeliveryResponse(d queries.GetActiveDeliveriesQueryResponse) ActiveDeliveryResponse {
	resp := ActiveDeliveryResponse{
		ID:            d.ID.String(),
		Number:        d.Number,
		OrderID:       d.OrderID.String(),
		Status:        d.Status,
		Display:       d.Display,
		ScheduledDate: d.ScheduledDate,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.RiderID != nil {
		id := d.RiderID.String()
		resp.RiderID = &id
	}
	return resp
}

type LocationResponse struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type AvailableRiderResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Phone           string            `json:"phone"`
	VehicleType     string            `json:"vehicleType"`
	Rating          float64           `json:"rating"`
	TotalDeliveries int               `json:"totalDeliveries"`
	Location        *LocationResponse `json:"location,omitempty"`
}

func newAvailableRiderResponse(r queries.GetAvailableRidersQueryResponse) AvailableRiderResponse {
	resp := AvailableRiderResponse{
		ID:              r.ID.String(),
		Name:            r.Name,
		Phone:           r.Phone,
		VehicleType:     r.VehicleType,
		Rating:          r.Rating,
		TotalDeliveries: r.TotalDeliveries,
	}
	if r.Location != nil {
		resp.Location = &LocationResponse{
			Latitude:    r.Location.Latitude(),
			Longitude:   r.Location.Longitude(),
			LastUpdated: r.Location.LastUpdated(),
		}
	}
	return resp
}

// parseMoney treats an empty string as zero.
func parseMoney(paramName, s string) (kernel.Money, error) {
	if s == "" {
		return kernel.ZeroMoney(), nil
	}
	m, err := kernel.MoneyFromString(s)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return m, nil
}
