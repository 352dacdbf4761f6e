package repositories

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// SaveUser inserts a new user. The repository assigns the human-readable
	// uni_id from its sequence before the insert.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	// DeleteUser removes the account row. Ledger and order records referencing
	// the user are intentionally left in place.
	DeleteUser(ctx context.Context, userID string) error
}
