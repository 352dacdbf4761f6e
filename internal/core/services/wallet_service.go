package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
)

// walletServiceImpl implements the WalletSvcFacade interface
type walletServiceImpl struct {
	BaseService
	walletRepo portsrepo.WalletRepository
}

// NewWalletService creates a new wallet service.
func NewWalletService(walletRepo portsrepo.WalletRepository) portssvc.WalletSvcFacade {
	return &walletServiceImpl{walletRepo: walletRepo}
}

var _ portssvc.WalletSvcFacade = (*walletServiceImpl)(nil)

func (s *walletServiceImpl) TopUp(ctx context.Context, userID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidAmount
	}

	txn, err := s.walletRepo.TopUp(ctx, userID, amount, "Wallet top-up")
	if err != nil {
		s.LogError(ctx, err, "Failed to top up wallet", slog.String("user_id", userID))
		return decimal.Zero, err
	}

	s.LogInfo(ctx, "Wallet topped up",
		slog.String("user_id", userID),
		slog.String("amount", amount.String()),
		slog.String("balance", txn.BalanceAfter.String()))
	return txn.BalanceAfter, nil
}

func (s *walletServiceImpl) ListMyTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	txns, err := s.walletRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallet transactions", slog.String("user_id", userID))
		return nil, err
	}
	return txns, nil
}

func (s *walletServiceImpl) ListAllTransactions(ctx context.Context, limit int, offset int) ([]domain.WalletTransaction, error) {
	txns, err := s.walletRepo.ListAllTransactions(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list all wallet transactions")
		return nil, err
	}
	return txns, nil
}
