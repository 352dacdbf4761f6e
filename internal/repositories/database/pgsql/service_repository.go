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

type PgxServiceRepository struct {
	db *pgxpool.Pool
}

func newPgxServiceRepository(db *pgxpool.Pool) portsrepo.ServiceRepository {
	return &PgxServiceRepository{db: db}
}

var _ portsrepo.ServiceRepository = (*PgxServiceRepository)(nil)

func toModelService(d domain.Service) models.Service {
	return models.Service{
		ServiceID:   d.ServiceID,
		UniID:       d.UniID,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainService(m models.Service) domain.Service {
	return domain.Service{
		ServiceID:   m.ServiceID,
		UniID:       m.UniID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const serviceColumns = `service_id, uni_id, title, description, price, image, created_at, last_updated_at`

func scanService(row pgx.Row) (models.Service, error) {
	var m models.Service
	err := row.Scan(
		&m.ServiceID,
		&m.UniID,
		&m.Title,
		&m.Description,
		&m.Price,
		&m.Image,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxServiceRepository) SaveService(ctx context.Context, service domain.Service) (*domain.Service, error) {
	m := toModelService(service)

	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('service_uni_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to allocate service uni id: %w", err)
	}
	m.UniID = utils.FormatUniID(utils.ServiceIDPrefix, seq)

	query := `
        INSERT INTO services (service_id, uni_id, title, description, price, image, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.ServiceID, m.UniID, m.Title, m.Description, m.Price, m.Image, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save service: %w", err)
	}

	saved := toDomainService(m)
	return &saved, nil
}

func (r *PgxServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE service_id = $1;`
	m, err := scanService(r.db.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by ID %s: %w", serviceID, err)
	}
	service := toDomainService(m)
	return &service, nil
}

func (r *PgxServiceRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		m, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, toDomainService(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", err)
	}
	return services, nil
}

func (r *PgxServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	m := toModelService(service)
	query := `
        UPDATE services SET
            title = $2,
            description = $3,
            price = $4,
            image = $5,
            last_updated_at = $6
        WHERE service_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.ServiceID, m.Title, m.Description, m.Price, m.Image, m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxServiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE service_id = $1;`, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
