package domain

import (
	"github.com/shopspring/decimal"
)

// Order statuses are set once at creation and never transitioned.
const (
	StatusPurchased = "Purchased"
	StatusBooked    = "Booked"
)

// Purchase records a settled product order.
type Purchase struct {
	PurchaseID  string          `json:"purchaseID"`
	UserID      string          `json:"userID"`
	ProductID   string          `json:"productID"`
	CategoryID  string          `json:"categoryID"`
	Date        string          `json:"date"`
	Address     string          `json:"address"`
	Pincode     string          `json:"pincode"`
	Details     string          `json:"details"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	AuditFields
}

// Booking records a settled service order.
type Booking struct {
	BookingID   string          `json:"bookingID"`
	UserID      string          `json:"userID"`
	ServiceID   string          `json:"serviceID"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Address     string          `json:"address"`
	Pincode     string          `json:"pincode"`
	Details     string          `json:"details"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	AuditFields
}
