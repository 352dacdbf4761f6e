package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	"github.com/elitecrew/elite-crew-backend/internal/models"
)

type PgxWalletRepository struct {
	BaseRepository
}

func newPgxWalletRepository(db *pgxpool.Pool) portsrepo.WalletRepository {
	return &PgxWalletRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.WalletRepository = (*PgxWalletRepository)(nil)

func toDomainWalletTransaction(m models.WalletTransaction) domain.WalletTransaction {
	return domain.WalletTransaction{
		TxnID:        m.TxnID,
		UserID:       m.UserID,
		Type:         domain.WalletTransactionType(m.Type),
		Amount:       m.Amount,
		BalanceAfter: m.BalanceAfter,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

// lockBalance reads the user's balance with the row locked for the remainder
// of the transaction.
func (r *PgxWalletRepository) lockBalance(ctx context.Context, tx pgx.Tx, userID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, `SELECT wallet_balance FROM users WHERE user_id = $1 FOR UPDATE;`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to lock wallet balance for user %s: %w", userID, err)
	}
	return balance, nil
}

func (r *PgxWalletRepository) updateBalance(ctx context.Context, tx pgx.Tx, userID string, balance decimal.Decimal, now time.Time) error {
	_, err := tx.Exec(ctx, `UPDATE users SET wallet_balance = $2, last_updated_at = $3 WHERE user_id = $1;`, userID, balance, now)
	if err != nil {
		return fmt.Errorf("failed to update wallet balance for user %s: %w", userID, err)
	}
	return nil
}

// newTopupEntry builds the ledger entry for a credit of amount against the
// locked balance and returns it with the resulting balance.
func newTopupEntry(userID string, balance, amount decimal.Decimal, description string, now time.Time) (models.WalletTransaction, decimal.Decimal) {
	newBalance := balance.Add(amount)
	return models.WalletTransaction{
		TxnID:        uuid.NewString(),
		UserID:       userID,
		Type:         string(domain.TxnTopup),
		Amount:       amount,
		BalanceAfter: newBalance,
		Description:  description,
		CreatedAt:    now,
	}, newBalance
}

// newSettlementEntry builds the debit ledger entry for a purchase or booking
// of total against the locked balance. The entry records the debit as a
// negative amount so that summing a user's ledger reproduces their balance
// movement. Returns ErrInsufficientFunds when the balance cannot cover total.
func newSettlementEntry(userID string, txnType domain.WalletTransactionType, balance, total decimal.Decimal, description string, now time.Time) (models.WalletTransaction, decimal.Decimal, error) {
	if balance.LessThan(total) {
		return models.WalletTransaction{}, decimal.Zero, apperrors.ErrInsufficientFunds
	}
	newBalance := balance.Sub(total)
	return models.WalletTransaction{
		TxnID:        uuid.NewString(),
		UserID:       userID,
		Type:         string(txnType),
		Amount:       total.Neg(),
		BalanceAfter: newBalance,
		Description:  description,
		CreatedAt:    now,
	}, newBalance, nil
}

func (r *PgxWalletRepository) insertLedgerEntry(ctx context.Context, tx pgx.Tx, txn models.WalletTransaction) error {
	query := `
        INSERT INTO wallet_transactions (txn_id, user_id, type, amount, balance_after, description, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := tx.Exec(ctx, query,
		txn.TxnID, txn.UserID, txn.Type, txn.Amount, txn.BalanceAfter, txn.Description, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wallet transaction: %w", err)
	}
	return nil
}

func (r *PgxWalletRepository) TopUp(ctx context.Context, userID string, amount decimal.Decimal, description string) (*domain.WalletTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.lockBalance(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn, newBalance := newTopupEntry(userID, balance, amount, description, now)
	if err := r.updateBalance(ctx, tx, userID, newBalance, now); err != nil {
		return nil, err
	}
	if err := r.insertLedgerEntry(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := toDomainWalletTransaction(txn)
	return &result, nil
}

// SettlePurchase runs the whole settlement as one transaction: the user row
// is locked, the balance guard applied, the balance updated, the ledger entry
// appended and the purchase inserted. A failure at any step leaves nothing
// behind.
func (r *PgxWalletRepository) SettlePurchase(ctx context.Context, purchase domain.Purchase, total decimal.Decimal, description string) (*domain.Purchase, decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.lockBalance(ctx, tx, purchase.UserID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	now := time.Now()
	txn, newBalance, err := newSettlementEntry(purchase.UserID, domain.TxnPurchase, balance, total, description, now)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if err := r.updateBalance(ctx, tx, purchase.UserID, newBalance, now); err != nil {
		return nil, decimal.Zero, err
	}
	if err := r.insertLedgerEntry(ctx, tx, txn); err != nil {
		return nil, decimal.Zero, err
	}

	purchaseQuery := `
        INSERT INTO purchases (purchase_id, user_id, product_id, category_id, date, address, pincode, details, total_amount, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err = tx.Exec(ctx, purchaseQuery,
		purchase.PurchaseID, purchase.UserID, purchase.ProductID, purchase.CategoryID,
		purchase.Date, purchase.Address, purchase.Pincode, purchase.Details,
		purchase.TotalAmount, purchase.Status, now, now,
	)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to insert purchase: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, decimal.Zero, err
	}

	purchase.CreatedAt = now
	purchase.LastUpdatedAt = now
	return &purchase, newBalance, nil
}

// SettleBooking is the service-booking counterpart of SettlePurchase.
func (r *PgxWalletRepository) SettleBooking(ctx context.Context, booking domain.Booking, total decimal.Decimal, description string) (*domain.Booking, decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.lockBalance(ctx, tx, booking.UserID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	now := time.Now()
	txn, newBalance, err := newSettlementEntry(booking.UserID, domain.TxnBooking, balance, total, description, now)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if err := r.updateBalance(ctx, tx, booking.UserID, newBalance, now); err != nil {
		return nil, decimal.Zero, err
	}
	if err := r.insertLedgerEntry(ctx, tx, txn); err != nil {
		return nil, decimal.Zero, err
	}

	bookingQuery := `
        INSERT INTO bookings (booking_id, user_id, service_id, date, time, address, pincode, details, total_amount, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err = tx.Exec(ctx, bookingQuery,
		booking.BookingID, booking.UserID, booking.ServiceID,
		booking.Date, booking.Time, booking.Address, booking.Pincode, booking.Details,
		booking.TotalAmount, booking.Status, now, now,
	)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, decimal.Zero, err
	}

	booking.CreatedAt = now
	booking.LastUpdatedAt = now
	return &booking, newBalance, nil
}

const walletTxnColumns = `txn_id, user_id, type, amount, balance_after, description, created_at`

func scanWalletTransaction(row pgx.Row) (models.WalletTransaction, error) {
	var m models.WalletTransaction
	err := row.Scan(&m.TxnID, &m.UserID, &m.Type, &m.Amount, &m.BalanceAfter, &m.Description, &m.CreatedAt)
	return m, err
}

func (r *PgxWalletRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	query := `SELECT ` + walletTxnColumns + ` FROM wallet_transactions WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallet transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.WalletTransaction
	for rows.Next() {
		m, err := scanWalletTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet transaction row: %w", err)
		}
		txns = append(txns, toDomainWalletTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallet transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxWalletRepository) ListAllTransactions(ctx context.Context, limit int, offset int) ([]domain.WalletTransaction, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + walletTxnColumns + ` FROM wallet_transactions ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallet transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.WalletTransaction
	for rows.Next() {
		m, err := scanWalletTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet transaction row: %w", err)
		}
		txns = append(txns, toDomainWalletTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallet transaction rows: %w", err)
	}
	return txns, nil
}
