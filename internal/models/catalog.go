package models

import (
	"github.com/shopspring/decimal"
)

// Product is the persisted representation of a purchasable item.
type Product struct {
	ProductID   string          `db:"product_id"`
	UniID       string          `db:"uni_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Image       string          `db:"image"`
	CategoryID  string          `db:"category_id"`
	AuditFields
}

// Service is the persisted representation of a bookable item.
type Service struct {
	ServiceID   string          `db:"service_id"`
	UniID       string          `db:"uni_id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Image       string          `db:"image"`
	AuditFields
}

// ProductCategory is the persisted representation of a product grouping.
type ProductCategory struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	Image      string `db:"image"`
	AuditFields
}
