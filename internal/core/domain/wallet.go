package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletTransactionType tags the kind of balance-affecting event.
type WalletTransactionType string

const (
	TxnTopup    WalletTransactionType = "topup"
	TxnPurchase WalletTransactionType = "purchase"
	TxnBooking  WalletTransactionType = "booking"
)

// WalletTransaction is one append-only ledger entry for a user's wallet.
// The chain of BalanceAfter values must equal the running sum of Amount
// starting from the account's opening balance.
type WalletTransaction struct {
	TxnID        string                `json:"txnID"`
	UserID       string                `json:"userID"`
	Type         WalletTransactionType `json:"type"`
	Amount       decimal.Decimal       `json:"amount"`
	BalanceAfter decimal.Decimal       `json:"balanceAfter"`
	Description  string                `json:"description"`
	CreatedAt    time.Time             `json:"createdAt"`
}
