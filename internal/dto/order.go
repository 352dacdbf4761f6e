package dto

import (
	"time"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/elitecrew/elite-crew-backend/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// PurchaseRequest is the payload for settling a product purchase.
type PurchaseRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Pincode   string `json:"pincode" binding:"required,pincode"`
	Details   string `json:"details"`
}

// BookingRequest is the payload for settling a service booking.
type BookingRequest struct {
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Address string `json:"address" binding:"required"`
	Pincode string `json:"pincode" binding:"required,pincode"`
	Details string `json:"details"`
}

// PurchaseResponse is the public representation of a settled purchase.
type PurchaseResponse struct {
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
	CreatedAt   time.Time       `json:"createdAt"`
}

// BookingResponse is the public representation of a settled booking.
type BookingResponse struct {
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
	CreatedAt   time.Time       `json:"createdAt"`
}

// PageParams defines limit/offset parameters for admin listings.
type PageParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// PurchaseResult is returned by a successful product settlement.
type PurchaseResult struct {
	Message   string            `json:"message"`
	Purchase  PurchaseResponse  `json:"purchase"`
	Wallet    decimal.Decimal   `json:"wallet"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// BookingResult is returned by a successful service settlement.
type BookingResult struct {
	Message   string            `json:"message"`
	Booking   BookingResponse   `json:"booking"`
	Wallet    decimal.Decimal   `json:"wallet"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:  p.PurchaseID,
		UserID:      p.UserID,
		ProductID:   p.ProductID,
		CategoryID:  p.CategoryID,
		Date:        p.Date,
		Address:     p.Address,
		Pincode:     p.Pincode,
		Details:     p.Details,
		TotalAmount: p.TotalAmount,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		out[i] = ToPurchaseResponse(&purchases[i])
	}
	return out
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:   b.BookingID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		Date:        b.Date,
		Time:        b.Time,
		Address:     b.Address,
		Pincode:     b.Pincode,
		Details:     b.Details,
		TotalAmount: b.TotalAmount,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func ToBookingResponses(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = ToBookingResponse(&bookings[i])
	}
	return out
}
