package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
	"github.com/elitecrew/elite-crew-backend/internal/utils"
)

// userServiceImpl implements the UserSvcFacade interface
type userServiceImpl struct {
	BaseService
	userRepo       portsrepo.UserRepository
	orderRepo      portsrepo.OrderRepository
	walletRepo     portsrepo.WalletRepository
	openingBalance decimal.Decimal
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository, orderRepo portsrepo.OrderRepository, walletRepo portsrepo.WalletRepository, openingBalance decimal.Decimal) portssvc.UserSvcFacade {
	return &userServiceImpl{
		userRepo:       userRepo,
		orderRepo:      orderRepo,
		walletRepo:     walletRepo,
		openingBalance: openingBalance,
	}
}

var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

func (s *userServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("email", req.Email))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewBadRequestError("an account with this email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInternalServerError("failed to process password")
	}

	now := time.Now()
	user := domain.User{
		UserID:                  uuid.NewString(),
		Name:                    req.Name,
		Email:                   req.Email,
		PasswordHash:            hash,
		Role:                    domain.RoleUser,
		WalletBalance:           s.openingBalance,
		NotificationPreferences: domain.DefaultNotificationPreferences(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewBadRequestError("an account with this email already exists")
		}
		s.LogError(ctx, err, "Failed to save new user")
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", saved.UserID), slog.String("uni_id", saved.UniID))
	return saved, nil
}

func (s *userServiceImpl) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		s.LogError(ctx, err, "Failed to find user by email")
		return nil, err
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	return user, nil
}

func (s *userServiceImpl) CreateOAuthUser(ctx context.Context, authProvider string, providerUserID string, email string, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, authProvider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find user by provider details", slog.String("provider", authProvider))
		return nil, err
	}

	// Link to an existing password account with the same email if present.
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		user.AuthProvider = authProvider
		user.ProviderUserID = providerUserID
		user.LastUpdatedAt = time.Now()
		if updateErr := s.userRepo.UpdateUser(ctx, *user); updateErr != nil {
			s.LogError(ctx, updateErr, "Failed to link provider to existing user", slog.String("user_id", user.UserID))
			return nil, updateErr
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find user by email for provider link")
		return nil, err
	}

	now := time.Now()
	newUser := domain.User{
		UserID:                  uuid.NewString(),
		Name:                    name,
		Email:                   email,
		Role:                    domain.RoleUser,
		WalletBalance:           s.openingBalance,
		NotificationPreferences: domain.DefaultNotificationPreferences(),
		AuthProvider:            authProvider,
		ProviderUserID:          providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.userRepo.SaveUser(ctx, newUser)
	if err != nil {
		s.LogError(ctx, err, "Failed to save oauth user")
		return nil, err
	}

	s.LogInfo(ctx, "OAuth user created", slog.String("user_id", saved.UserID), slog.String("provider", authProvider))
	return saved, nil
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) GetUserRole(ctx context.Context, userID string) (domain.UserRole, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest, imageURL string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		other, err := s.userRepo.FindUserByEmail(ctx, *req.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to check email availability")
			return nil, err
		}
		if other != nil {
			return nil, apperrors.NewBadRequestError("an account with this email already exists")
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, apperrors.NewInternalServerError("failed to process password")
		}
		user.PasswordHash = hash
	}
	if imageURL != "" {
		user.ProfileImage = imageURL
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

func (s *userServiceImpl) GetNotificationPreferences(ctx context.Context, userID string) (*domain.NotificationPreferences, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs := user.NotificationPreferences
	return &prefs, nil
}

func (s *userServiceImpl) UpdateNotificationPreferences(ctx context.Context, userID string, req dto.NotificationPreferencesRequest) (*domain.NotificationPreferences, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.NotificationPreferences.Email = *req.Email
	}
	if req.SMS != nil {
		user.NotificationPreferences.SMS = *req.SMS
	}
	if req.ProductUpdates != nil {
		user.NotificationPreferences.ProductUpdates = *req.ProductUpdates
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update notification preferences", slog.String("user_id", userID))
		return nil, err
	}

	prefs := user.NotificationPreferences
	return &prefs, nil
}

func (s *userServiceImpl) ExportUserData(ctx context.Context, userID string) (*dto.UserDataExport, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	purchases, err := s.orderRepo.ListPurchasesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for export", slog.String("user_id", userID))
		return nil, err
	}

	bookings, err := s.orderRepo.ListBookingsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings for export", slog.String("user_id", userID))
		return nil, err
	}

	txns, err := s.walletRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallet transactions for export", slog.String("user_id", userID))
		return nil, err
	}

	return &dto.UserDataExport{
		Profile:            dto.ToUserResponse(user),
		Purchases:          dto.ToPurchaseResponses(purchases),
		Bookings:           dto.ToBookingResponses(bookings),
		WalletTransactions: dto.ToWalletTransactionResponses(txns),
	}, nil
}
