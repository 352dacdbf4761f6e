package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	"github.com/elitecrew/elite-crew-backend/internal/models"
	"github.com/elitecrew/elite-crew-backend/internal/utils"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) (models.User, error) {
	prefs, err := json.Marshal(d.NotificationPreferences)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to marshal notification preferences: %w", err)
	}
	return models.User{
		UserID:         d.UserID,
		UniID:          d.UniID,
		Name:           d.Name,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		Role:           string(d.Role),
		ProfileImage:   d.ProfileImage,
		WalletBalance:  d.WalletBalance,
		NotifyPrefs:    prefs,
		AuthProvider:   d.AuthProvider,
		ProviderUserID: d.ProviderUserID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}, nil
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	prefs := domain.DefaultNotificationPreferences()
	if len(m.NotifyPrefs) > 0 {
		_ = json.Unmarshal(m.NotifyPrefs, &prefs)
	}
	return domain.User{
		UserID:                  m.UserID,
		UniID:                   m.UniID,
		Name:                    m.Name,
		Email:                   m.Email,
		PasswordHash:            m.PasswordHash,
		Role:                    domain.UserRole(m.Role),
		ProfileImage:            m.ProfileImage,
		WalletBalance:           m.WalletBalance,
		NotificationPreferences: prefs,
		AuthProvider:            m.AuthProvider,
		ProviderUserID:          m.ProviderUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const userColumns = `user_id, uni_id, name, email, password_hash, role, profile_image, wallet_balance, notification_prefs, auth_provider, provider_user_id, created_at, last_updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.UniID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.ProfileImage,
		&m.WalletBalance,
		&m.NotifyPrefs,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser, err := toModelUser(user)
	if err != nil {
		return nil, err
	}

	// The human-readable identifier comes from a sequence so concurrent
	// registrations never collide.
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('user_uni_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to allocate user uni id: %w", err)
	}
	modelUser.UniID = utils.FormatUniID(utils.UserIDPrefix, seq)

	query := `
        INSERT INTO users (user_id, uni_id, name, email, password_hash, role, profile_image, wallet_balance, notification_prefs, auth_provider, provider_user_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err = r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.UniID,
		modelUser.Name,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.Role,
		modelUser.ProfileImage,
		modelUser.WalletBalance,
		modelUser.NotifyPrefs,
		modelUser.AuthProvider,
		modelUser.ProviderUserID,
		modelUser.CreatedAt,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	saved := toDomainUser(modelUser)
	return &saved, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	domainUser := toDomainUser(m)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	domainUser := toDomainUser(m)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2;`
	m, err := scanUser(r.db.QueryRow(ctx, query, authProvider, providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider details: %w", err)
	}
	domainUser := toDomainUser(m)
	return &domainUser, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser, err := toModelUser(user)
	if err != nil {
		return err
	}

	query := `
        UPDATE users SET
            name = $2,
            email = $3,
            password_hash = $4,
            profile_image = $5,
            notification_prefs = $6,
            auth_provider = $7,
            provider_user_id = $8,
            last_updated_at = $9
        WHERE user_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Name,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.ProfileImage,
		modelUser.NotifyPrefs,
		modelUser.AuthProvider,
		modelUser.ProviderUserID,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
