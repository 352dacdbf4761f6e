package services

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// UserSvcFacade defines user account operations.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate verifies email/password credentials and returns the user.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)
	// CreateOAuthUser finds or creates the user matching a verified external
	// identity. New users get the standard opening wallet balance.
	CreateOAuthUser(ctx context.Context, authProvider string, providerUserID string, email string, name string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// GetUserRole resolves the role claim for authorization middleware.
	GetUserRole(ctx context.Context, userID string) (domain.UserRole, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest, imageURL string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	GetNotificationPreferences(ctx context.Context, userID string) (*domain.NotificationPreferences, error)
	UpdateNotificationPreferences(ctx context.Context, userID string, req dto.NotificationPreferencesRequest) (*domain.NotificationPreferences, error)
	ExportUserData(ctx context.Context, userID string) (*dto.UserDataExport, error)
}
