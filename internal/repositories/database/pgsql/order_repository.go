package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	"github.com/elitecrew/elite-crew-backend/internal/models"
)

type PgxOrderRepository struct {
	db *pgxpool.Pool
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepository {
	return &PgxOrderRepository{db: db}
}

var _ portsrepo.OrderRepository = (*PgxOrderRepository)(nil)

func toDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:  m.PurchaseID,
		UserID:      m.UserID,
		ProductID:   m.ProductID,
		CategoryID:  m.CategoryID,
		Date:        m.Date,
		Address:     m.Address,
		Pincode:     m.Pincode,
		Details:     m.Details,
		TotalAmount: m.TotalAmount,
		Status:      m.Status,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toDomainBooking(m models.Booking) domain.Booking {
	return domain.Booking{
		BookingID:   m.BookingID,
		UserID:      m.UserID,
		ServiceID:   m.ServiceID,
		Date:        m.Date,
		Time:        m.Time,
		Address:     m.Address,
		Pincode:     m.Pincode,
		Details:     m.Details,
		TotalAmount: m.TotalAmount,
		Status:      m.Status,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const purchaseColumns = `purchase_id, user_id, product_id, category_id, date, address, pincode, details, total_amount, status, created_at, last_updated_at`

func scanPurchase(row pgx.Row) (models.Purchase, error) {
	var m models.Purchase
	err := row.Scan(
		&m.PurchaseID, &m.UserID, &m.ProductID, &m.CategoryID,
		&m.Date, &m.Address, &m.Pincode, &m.Details,
		&m.TotalAmount, &m.Status, &m.CreatedAt, &m.LastUpdatedAt,
	)
	return m, err
}

const bookingColumns = `booking_id, user_id, service_id, date, time, address, pincode, details, total_amount, status, created_at, last_updated_at`

func scanBooking(row pgx.Row) (models.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID, &m.UserID, &m.ServiceID,
		&m.Date, &m.Time, &m.Address, &m.Pincode, &m.Details,
		&m.TotalAmount, &m.Status, &m.CreatedAt, &m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxOrderRepository) collectPurchases(rows pgx.Rows) ([]domain.Purchase, error) {
	defer rows.Close()
	var purchases []domain.Purchase
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, toDomainPurchase(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}
	return purchases, nil
}

func (r *PgxOrderRepository) collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	defer rows.Close()
	var bookings []domain.Booking
	for rows.Next() {
		m, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, toDomainBooking(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *PgxOrderRepository) ListPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	return r.collectPurchases(rows)
}

func (r *PgxOrderRepository) ListAllPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	return r.collectPurchases(rows)
}

func (r *PgxOrderRepository) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	return r.collectBookings(rows)
}

func (r *PgxOrderRepository) ListAllBookings(ctx context.Context, limit int, offset int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	return r.collectBookings(rows)
}
