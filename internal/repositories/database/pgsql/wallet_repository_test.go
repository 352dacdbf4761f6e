package pgsql

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

func TestNewTopupEntry(t *testing.T) {
	now := time.Now()
	balance := decimal.NewFromInt(70000)
	amount := decimal.NewFromInt(5000)

	txn, newBalance := newTopupEntry("user-1", balance, amount, "Wallet top-up", now)

	assert.True(t, newBalance.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, "user-1", txn.UserID)
	assert.Equal(t, string(domain.TxnTopup), txn.Type)
	assert.True(t, txn.Amount.Equal(amount))
	assert.True(t, txn.BalanceAfter.Equal(newBalance))
	assert.Equal(t, "Wallet top-up", txn.Description)
	assert.Equal(t, now, txn.CreatedAt)
	assert.NotEmpty(t, txn.TxnID)
}

func TestNewSettlementEntry(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		txnType     domain.WalletTransactionType
		balance     decimal.Decimal
		total       decimal.Decimal
		wantBalance decimal.Decimal
		wantErr     error
	}{
		{
			name:        "purchase debits the balance",
			txnType:     domain.TxnPurchase,
			balance:     decimal.NewFromInt(70000),
			total:       decimal.NewFromInt(1280),
			wantBalance: decimal.NewFromInt(68720),
		},
		{
			name:        "booking debits the balance",
			txnType:     domain.TxnBooking,
			balance:     decimal.NewFromInt(68720),
			total:       decimal.NewFromInt(640),
			wantBalance: decimal.NewFromInt(68080),
		},
		{
			name:        "exact balance drains to zero",
			txnType:     domain.TxnPurchase,
			balance:     decimal.NewFromInt(1280),
			total:       decimal.NewFromInt(1280),
			wantBalance: decimal.Zero,
		},
		{
			name:    "insufficient balance is rejected",
			txnType: domain.TxnPurchase,
			balance: decimal.NewFromInt(1000),
			total:   decimal.NewFromInt(1280),
			wantErr: apperrors.ErrInsufficientFunds,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			txn, newBalance, err := newSettlementEntry("user-1", tc.txnType, tc.balance, tc.total, "order", now)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			assert.True(t, newBalance.Equal(tc.wantBalance))
			assert.Equal(t, string(tc.txnType), txn.Type)
			assert.True(t, txn.Amount.Equal(tc.total.Neg()), "debits are recorded as negative amounts")
			assert.True(t, txn.BalanceAfter.Equal(newBalance))
		})
	}
}

// A user's ledger must reconstruct their balance: each entry's balance_after
// equals the running sum, and the sum of all amounts equals the distance from
// the opening balance.
func TestLedgerEntriesReconstructBalance(t *testing.T) {
	now := time.Now()
	opening := decimal.NewFromInt(70000)
	balance := opening
	var amounts []decimal.Decimal

	txn, balance := newTopupEntry("user-1", balance, decimal.NewFromInt(5000), "Wallet top-up", now)
	assert.True(t, txn.BalanceAfter.Equal(balance))
	amounts = append(amounts, txn.Amount)

	txn, balance, err := newSettlementEntry("user-1", domain.TxnPurchase, balance, decimal.NewFromInt(1280), "Purchase", now)
	require.NoError(t, err)
	assert.True(t, txn.BalanceAfter.Equal(balance))
	amounts = append(amounts, txn.Amount)

	txn, balance, err = newSettlementEntry("user-1", domain.TxnBooking, balance, decimal.NewFromInt(640), "Booking", now)
	require.NoError(t, err)
	assert.True(t, txn.BalanceAfter.Equal(balance))
	amounts = append(amounts, txn.Amount)

	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	assert.True(t, sum.Equal(balance.Sub(opening)))
	assert.True(t, balance.Equal(decimal.NewFromInt(73080)))
}
