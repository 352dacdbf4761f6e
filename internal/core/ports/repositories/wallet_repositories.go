package repositories

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletRepository owns every balance mutation. Each mutating method runs the
// balance change, the ledger append, and (for settlements) the order insert
// inside one database transaction with the user row locked, so they commit or
// roll back together.
type WalletRepository interface {
	// TopUp increments the balance and appends a topup ledger entry.
	// Returns the recorded transaction including the resulting balance.
	TopUp(ctx context.Context, userID string, amount decimal.Decimal, description string) (*domain.WalletTransaction, error)

	// SettlePurchase deducts total from the buyer's wallet, appends a
	// purchase ledger entry, and records the purchase. Returns
	// apperrors.ErrInsufficientFunds without any mutation when the balance
	// does not cover the total.
	SettlePurchase(ctx context.Context, purchase domain.Purchase, total decimal.Decimal, description string) (*domain.Purchase, decimal.Decimal, error)

	// SettleBooking is the service-booking counterpart of SettlePurchase.
	SettleBooking(ctx context.Context, booking domain.Booking, total decimal.Decimal, description string) (*domain.Booking, decimal.Decimal, error)

	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.WalletTransaction, error)
	ListAllTransactions(ctx context.Context, limit int, offset int) ([]domain.WalletTransaction, error)
}
