package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a purchasable catalog item belonging to a category.
type Product struct {
	ProductID   string          `json:"productID"`
	UniID       string          `json:"uniID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	CategoryID  string          `json:"categoryID"`
	AuditFields
}

// Service is a bookable catalog item.
type Service struct {
	ServiceID   string          `json:"serviceID"`
	UniID       string          `json:"uniID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	AuditFields
}

// ProductCategory groups products for browsing.
type ProductCategory struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	AuditFields
}
