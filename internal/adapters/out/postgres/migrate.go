package postgres

import (
	"backoffice/internal/adapters/out/postgres/deliveryrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/purchaserepo"
	"backoffice/internal/adapters/out/postgres/riderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the back office needs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&purchaserepo.PurchaseOrderDTO{},
		&purchaserepo.ItemDTO{},
		&riderrepo.RiderDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
}

// Tables lists the tables created by Migrate, children first.
func Tables() []string {
	return []string{
		"order_items",
		"orders",
		"purchase_order_items",
		"purchase_orders",
		"deliveries",
		"riders",
	}
}
