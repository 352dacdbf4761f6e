package repositories

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// OrderRepository defines read operations over settled purchases and bookings.
// Order rows are created by WalletRepository inside the settlement transaction.
type OrderRepository interface {
	ListPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error)
	ListAllPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context, limit int, offset int) ([]domain.Booking, error)
}
