package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletTransaction is one row of the append-only wallet ledger.
type WalletTransaction struct {
	TxnID        string          `db:"txn_id"`
	UserID       string          `db:"user_id"`
	Type         string          `db:"type"`
	Amount       decimal.Decimal `db:"amount"`
	BalanceAfter decimal.Decimal `db:"balance_after"`
	Description  string          `db:"description"`
	CreatedAt    time.Time       `db:"created_at"`
}
