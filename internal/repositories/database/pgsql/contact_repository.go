package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
)

type PgxContactRepository struct {
	db *pgxpool.Pool
}

func newPgxContactRepository(db *pgxpool.Pool) portsrepo.ContactRepository {
	return &PgxContactRepository{db: db}
}

var _ portsrepo.ContactRepository = (*PgxContactRepository)(nil)

func (r *PgxContactRepository) SaveMessage(ctx context.Context, message domain.ContactMessage) error {
	query := `
        INSERT INTO contact_messages (message_id, name, email, message, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		message.MessageID, message.Name, message.Email, message.Message, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}
