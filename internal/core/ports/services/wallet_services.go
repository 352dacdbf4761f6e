package services

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletSvcFacade defines wallet top-up and ledger read operations.
type WalletSvcFacade interface {
	// TopUp adds funds. Returns apperrors.ErrInvalidAmount for amounts <= 0.
	TopUp(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error)
	ListMyTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error)
	ListAllTransactions(ctx context.Context, limit int, offset int) ([]domain.WalletTransaction, error)
}
