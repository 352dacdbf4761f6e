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

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.ProductCategory) domain.ProductCategory {
	return domain.ProductCategory{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Image:      m.Image,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.ProductCategory) error {
	query := `
        INSERT INTO product_categories (category_id, name, image, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		category.CategoryID, category.Name, category.Image, category.CreatedAt, category.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ProductCategory, error) {
	query := `SELECT category_id, name, image, created_at, last_updated_at FROM product_categories WHERE category_id = $1;`
	var m models.ProductCategory
	err := r.db.QueryRow(ctx, query, categoryID).Scan(&m.CategoryID, &m.Name, &m.Image, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	category := toDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	query := `SELECT category_id, name, image, created_at, last_updated_at FROM product_categories ORDER BY name;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.ProductCategory
	for rows.Next() {
		var m models.ProductCategory
		if err := rows.Scan(&m.CategoryID, &m.Name, &m.Image, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.ProductCategory) error {
	query := `
        UPDATE product_categories SET
            name = $2,
            image = $3,
            last_updated_at = $4
        WHERE category_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, category.CategoryID, category.Name, category.Image, category.LastUpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
