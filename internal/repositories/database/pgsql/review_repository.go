package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	"github.com/elitecrew/elite-crew-backend/internal/models"
)

type PgxReviewRepository struct {
	db *pgxpool.Pool
}

func newPgxReviewRepository(db *pgxpool.Pool) portsrepo.ReviewRepository {
	return &PgxReviewRepository{db: db}
}

var _ portsrepo.ReviewRepository = (*PgxReviewRepository)(nil)

func toDomainReview(m models.Review, userName string) domain.Review {
	return domain.Review{
		ReviewID:  m.ReviewID,
		ItemKind:  domain.ItemKind(m.ItemKind),
		ItemID:    m.ItemID,
		UserID:    m.UserID,
		UserName:  userName,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PgxReviewRepository) SaveReview(ctx context.Context, review domain.Review) error {
	query := `
        INSERT INTO reviews (review_id, item_kind, item_id, user_id, rating, comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		review.ReviewID, string(review.ItemKind), review.ItemID, review.UserID,
		review.Rating, review.Comment, review.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (item_kind, item_id, user_id)
			return apperrors.ErrDuplicateReview
		}
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

func (r *PgxReviewRepository) FindReviewByUserAndItem(ctx context.Context, userID string, kind domain.ItemKind, itemID string) (*domain.Review, error) {
	query := `
        SELECT review_id, item_kind, item_id, user_id, rating, comment, created_at
        FROM reviews
        WHERE user_id = $1 AND item_kind = $2 AND item_id = $3;
    `
	var m models.Review
	err := r.db.QueryRow(ctx, query, userID, string(kind), itemID).Scan(
		&m.ReviewID, &m.ItemKind, &m.ItemID, &m.UserID, &m.Rating, &m.Comment, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	review := toDomainReview(m, "")
	return &review, nil
}

func (r *PgxReviewRepository) ListReviewsByItem(ctx context.Context, kind domain.ItemKind, itemID string) ([]domain.Review, error) {
	query := `
        SELECT r.review_id, r.item_kind, r.item_id, r.user_id, r.rating, r.comment, r.created_at,
               COALESCE(u.name, '')
        FROM reviews r
        LEFT JOIN users u ON u.user_id = r.user_id
        WHERE r.item_kind = $1 AND r.item_id = $2
        ORDER BY r.created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, string(kind), itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var m models.Review
		var userName string
		if err := rows.Scan(&m.ReviewID, &m.ItemKind, &m.ItemID, &m.UserID, &m.Rating, &m.Comment, &m.CreatedAt, &userName); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, toDomainReview(m, userName))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}
	return reviews, nil
}
