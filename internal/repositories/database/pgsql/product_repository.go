package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	"github.com/elitecrew/elite-crew-backend/internal/models"
	"github.com/elitecrew/elite-crew-backend/internal/utils"
)

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{db: db}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func toModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		UniID:       d.UniID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		CategoryID:  d.CategoryID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		UniID:       m.UniID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		CategoryID:  m.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const productColumns = `product_id, uni_id, title, description, price, image, category_id, created_at, last_updated_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.UniID,
		&m.Title,
		&m.Description,
		&m.Price,
		&m.Image,
		&m.CategoryID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	m := toModelProduct(product)

	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('product_uni_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to allocate product uni id: %w", err)
	}
	m.UniID = utils.FormatUniID(utils.ProductIDPrefix, seq)

	query := `
        INSERT INTO products (product_id, uni_id, title, description, price, image, category_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.ProductID, m.UniID, m.Title, m.Description, m.Price, m.Image, m.CategoryID, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	saved := toDomainProduct(m)
	return &saved, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	product := toDomainProduct(m)
	return &product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, toDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := toModelProduct(product)
	query := `
        UPDATE products SET
            title = $2,
            description = $3,
            price = $4,
            image = $5,
            category_id = $6,
            last_updated_at = $7
        WHERE product_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.ProductID, m.Title, m.Description, m.Price, m.Image, m.CategoryID, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
