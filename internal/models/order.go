package models

import (
	"github.com/shopspring/decimal"
)

// Purchase is the persisted representation of a settled product order.
type Purchase struct {
	PurchaseID  string          `db:"purchase_id"`
	UserID      string          `db:"user_id"`
	ProductID   string          `db:"product_id"`
	CategoryID  string          `db:"category_id"`
	Date        string          `db:"date"`
	Address     string          `db:"address"`
	Pincode     string          `db:"pincode"`
	Details     string          `db:"details"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      string          `db:"status"`
	AuditFields
}

// Booking is the persisted representation of a settled service order.
type Booking struct {
	BookingID   string          `db:"booking_id"`
	UserID      string          `db:"user_id"`
	ServiceID   string          `db:"service_id"`
	Date        string          `db:"date"`
	Time        string          `db:"time"`
	Address     string          `db:"address"`
	Pincode     string          `db:"pincode"`
	Details     string          `db:"details"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      string          `db:"status"`
	AuditFields
}
