package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/core/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListPurchasesByUser(ctx context.Context, userID string) ([]domain.Purchase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockOrderRepository) ListAllPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockOrderRepository) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockOrderRepository) ListAllBookings(ctx context.Context, limit int, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo   *MockUserRepository
	mockOrderRepo  *MockOrderRepository
	mockWalletRepo *MockWalletRepository
	service        portssvc.UserSvcFacade
	openingBalance decimal.Decimal
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.openingBalance = decimal.NewFromInt(70000)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockOrderRepo, suite.mockWalletRepo, suite.openingBalance)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "supersecret",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == req.Name &&
			u.Email == req.Email &&
			u.Role == domain.RoleUser &&
			u.WalletBalance.Equal(suite.openingBalance) &&
			u.NotificationPreferences == domain.DefaultNotificationPreferences() &&
			u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(&domain.User{
		UserID:        uuid.NewString(),
		UniID:         "USR0042",
		Name:          req.Name,
		Email:         req.Email,
		Role:          domain.RoleUser,
		WalletBalance: suite.openingBalance,
	}, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("USR0042", user.UniID)
	suite.True(user.WalletBalance.Equal(suite.openingBalance))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "supersecret",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(&domain.User{
		UserID: uuid.NewString(),
		Email:  req.Email,
	}, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "supersecret"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "asha@example.com",
		PasswordHash: string(hash),
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "asha@example.com",
		PasswordHash: string(hash),
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, "wrongpassword")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ExistingProviderUser() {
	ctx := context.Background()
	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "asha@example.com",
		AuthProvider:   "google",
		ProviderUserID: "google-sub-123",
	}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "google-sub-123").Return(user, nil).Once()

	got, err := suite.service.CreateOAuthUser(ctx, "google", "google-sub-123", user.Email, "Asha Rao")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_NewUserGetsOpeningBalance() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "google-sub-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" &&
			u.AuthProvider == "google" &&
			u.ProviderUserID == "google-sub-456" &&
			u.WalletBalance.Equal(suite.openingBalance)
	})).Return(&domain.User{
		UserID:        uuid.NewString(),
		UniID:         "USR0099",
		Email:         "new@example.com",
		WalletBalance: suite.openingBalance,
	}, nil).Once()

	got, err := suite.service.CreateOAuthUser(ctx, "google", "google-sub-456", "new@example.com", "New User")

	suite.Require().NoError(err)
	suite.True(got.WalletBalance.Equal(suite.openingBalance))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateNotificationPreferences_PartialUpdate() {
	ctx := context.Background()
	user := &domain.User{
		UserID:                  uuid.NewString(),
		NotificationPreferences: domain.DefaultNotificationPreferences(),
	}
	smsOn := true

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.NotificationPreferences.SMS && u.NotificationPreferences.Email && u.NotificationPreferences.ProductUpdates
	})).Return(nil).Once()

	prefs, err := suite.service.UpdateNotificationPreferences(ctx, user.UserID, dto.NotificationPreferencesRequest{SMS: &smsOn})

	suite.Require().NoError(err)
	suite.True(prefs.SMS)
	suite.True(prefs.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestExportUserData() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, UniID: "USR0007", Name: "Asha Rao"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockOrderRepo.On("ListPurchasesByUser", ctx, userID).Return([]domain.Purchase{{PurchaseID: uuid.NewString()}}, nil).Once()
	suite.mockOrderRepo.On("ListBookingsByUser", ctx, userID).Return([]domain.Booking{}, nil).Once()
	suite.mockWalletRepo.On("ListTransactionsByUser", ctx, userID).Return([]domain.WalletTransaction{{TxnID: uuid.NewString()}}, nil).Once()

	export, err := suite.service.ExportUserData(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal("USR0007", export.Profile.UniID)
	suite.Len(export.Purchases, 1)
	suite.Empty(export.Bookings)
	suite.Len(export.WalletTransactions, 1)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
