package services

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// SettlementSvcFacade runs the wallet settlement flow for both order kinds:
// price the item, guard the balance, deduct, append the ledger entry and
// record the order as one failure-atomic unit.
type SettlementSvcFacade interface {
	PurchaseProduct(ctx context.Context, userID string, req dto.PurchaseRequest) (*dto.PurchaseResult, error)
	BookService(ctx context.Context, userID string, serviceID string, req dto.BookingRequest) (*dto.BookingResult, error)
}

// OrderSvcFacade defines read access to settled orders.
type OrderSvcFacade interface {
	ListMyPurchases(ctx context.Context, userID string) ([]dto.PurchaseResponse, error)
	ListAllPurchases(ctx context.Context, limit int, offset int) ([]dto.PurchaseResponse, error)
	ListMyBookings(ctx context.Context, userID string) ([]dto.BookingResponse, error)
	ListAllBookings(ctx context.Context, limit int, offset int) ([]dto.BookingResponse, error)
}
