package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
)

// NewRepositoryContainer wires every pgx-backed repository.
func NewRepositoryContainer(dbPool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		User:     newPgxUserRepository(dbPool),
		Product:  newPgxProductRepository(dbPool),
		Service:  newPgxServiceRepository(dbPool),
		Category: newPgxCategoryRepository(dbPool),
		Order:    newPgxOrderRepository(dbPool),
		Wallet:   newPgxWalletRepository(dbPool),
		Review:   newPgxReviewRepository(dbPool),
		Blog:     newPgxBlogRepository(dbPool),
		Contact:  newPgxContactRepository(dbPool),
	}
}
