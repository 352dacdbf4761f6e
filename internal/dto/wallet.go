package dto

import (
	"time"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TopUpRequest is the payload for adding funds to the wallet.
type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TopUpResponse returns the balance after a successful top-up.
type TopUpResponse struct {
	Message string          `json:"message"`
	Wallet  decimal.Decimal `json:"wallet"`
}

// WalletTransactionResponse is the public representation of a ledger entry.
type WalletTransactionResponse struct {
	TxnID        string          `json:"txnID"`
	UserID       string          `json:"userID"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ListWalletTransactionsParams defines admin ledger listing parameters.
type ListWalletTransactionsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

func ToWalletTransactionResponse(t *domain.WalletTransaction) WalletTransactionResponse {
	return WalletTransactionResponse{
		TxnID:        t.TxnID,
		UserID:       t.UserID,
		Type:         string(t.Type),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

func ToWalletTransactionResponses(txns []domain.WalletTransaction) []WalletTransactionResponse {
	out := make([]WalletTransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToWalletTransactionResponse(&txns[i])
	}
	return out
}
