package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/core/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock ServiceRepository ---
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) TopUp(ctx context.Context, userID string, amount decimal.Decimal, description string) (*domain.WalletTransaction, error) {
	args := m.Called(ctx, userID, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletTransaction), args.Error(1)
}

func (m *MockWalletRepository) SettlePurchase(ctx context.Context, purchase domain.Purchase, total decimal.Decimal, description string) (*domain.Purchase, decimal.Decimal, error) {
	args := m.Called(ctx, purchase, total, description)
	if args.Get(0) == nil {
		return nil, decimal.Zero, args.Error(2)
	}
	return args.Get(0).(*domain.Purchase), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockWalletRepository) SettleBooking(ctx context.Context, booking domain.Booking, total decimal.Decimal, description string) (*domain.Booking, decimal.Decimal, error) {
	args := m.Called(ctx, booking, total, description)
	if args.Get(0) == nil {
		return nil, decimal.Zero, args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockWalletRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}

func (m *MockWalletRepository) ListAllTransactions(ctx context.Context, limit int, offset int) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}

// --- Test Suite ---
type SettlementServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	mockServiceRepo *MockServiceRepository
	mockWalletRepo  *MockWalletRepository
	service         portssvc.SettlementSvcFacade
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.service = services.NewSettlementService(suite.mockProductRepo, suite.mockServiceRepo, suite.mockWalletRepo)
}

func (suite *SettlementServiceTestSuite) TestPurchaseProduct_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	product := &domain.Product{
		ProductID:  uuid.NewString(),
		UniID:      "PRO0001",
		Title:      "Gaming Mouse",
		Price:      decimal.NewFromInt(1000),
		CategoryID: uuid.NewString(),
	}
	req := dto.PurchaseRequest{
		ProductID: product.ProductID,
		Date:      "2026-09-01",
		Address:   "12 Main Street",
		Pincode:   "560001",
	}

	expectedTotal := decimal.NewFromInt(1280)
	balanceAfter := decimal.NewFromInt(68720)

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockWalletRepo.On("SettlePurchase", ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.UserID == userID &&
			p.ProductID == product.ProductID &&
			p.CategoryID == product.CategoryID &&
			p.Status == domain.StatusPurchased &&
			p.TotalAmount.Equal(expectedTotal)
	}), mock.MatchedBy(func(total decimal.Decimal) bool {
		return total.Equal(expectedTotal)
	}), "Purchased product: Gaming Mouse").Return(&domain.Purchase{
		PurchaseID:  uuid.NewString(),
		UserID:      userID,
		ProductID:   product.ProductID,
		TotalAmount: expectedTotal,
		Status:      domain.StatusPurchased,
	}, balanceAfter, nil).Once()

	result, err := suite.service.PurchaseProduct(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Wallet.Equal(balanceAfter))
	suite.True(result.Breakdown.Base.Equal(decimal.NewFromInt(1000)))
	suite.True(result.Breakdown.TDS.Equal(decimal.NewFromInt(100)))
	suite.True(result.Breakdown.GST.Equal(decimal.NewFromInt(180)))
	suite.True(result.Breakdown.Total.Equal(expectedTotal))
	suite.Equal(domain.StatusPurchased, result.Purchase.Status)

	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestPurchaseProduct_InsufficientFunds() {
	ctx := context.Background()
	userID := uuid.NewString()
	product := &domain.Product{
		ProductID: uuid.NewString(),
		Title:     "Mechanical Keyboard",
		Price:     decimal.NewFromInt(90000),
	}
	req := dto.PurchaseRequest{
		ProductID: product.ProductID,
		Date:      "2026-09-01",
		Address:   "12 Main Street",
		Pincode:   "560001",
	}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockWalletRepo.On("SettlePurchase", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, decimal.Zero, apperrors.ErrInsufficientFunds).Once()

	result, err := suite.service.PurchaseProduct(ctx, userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(result)

	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestPurchaseProduct_ProductNotFound() {
	ctx := context.Background()
	req := dto.PurchaseRequest{
		ProductID: uuid.NewString(),
		Date:      "2026-09-01",
		Address:   "12 Main Street",
		Pincode:   "560001",
	}

	suite.mockProductRepo.On("FindProductByID", ctx, req.ProductID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.PurchaseProduct(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)

	suite.mockWalletRepo.AssertNotCalled(suite.T(), "SettlePurchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestBookService_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	service := &domain.Service{
		ServiceID: uuid.NewString(),
		UniID:     "SER0001",
		Title:     "Deep Cleaning",
		Price:     decimal.NewFromInt(99),
	}
	req := dto.BookingRequest{
		Date:    "2026-09-02",
		Time:    "10:30",
		Address: "4 Park Road",
		Pincode: "400001",
	}

	// 99 + 9.9 + 17.82 = 126.72, rounded to 127
	expectedTotal := decimal.NewFromInt(127)
	balanceAfter := decimal.NewFromInt(69873)

	suite.mockServiceRepo.On("FindServiceByID", ctx, service.ServiceID).Return(service, nil).Once()
	suite.mockWalletRepo.On("SettleBooking", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.UserID == userID &&
			b.ServiceID == service.ServiceID &&
			b.Status == domain.StatusBooked &&
			b.Time == req.Time &&
			b.TotalAmount.Equal(expectedTotal)
	}), mock.MatchedBy(func(total decimal.Decimal) bool {
		return total.Equal(expectedTotal)
	}), "Booked service: Deep Cleaning").Return(&domain.Booking{
		BookingID:   uuid.NewString(),
		UserID:      userID,
		ServiceID:   service.ServiceID,
		TotalAmount: expectedTotal,
		Status:      domain.StatusBooked,
	}, balanceAfter, nil).Once()

	result, err := suite.service.BookService(ctx, userID, service.ServiceID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Wallet.Equal(balanceAfter))
	suite.True(result.Breakdown.Total.Equal(expectedTotal))
	suite.Equal(domain.StatusBooked, result.Booking.Status)

	suite.mockServiceRepo.AssertExpectations(suite.T())
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestBookService_ServiceNotFound() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	req := dto.BookingRequest{
		Date:    "2026-09-02",
		Time:    "10:30",
		Address: "4 Park Road",
		Pincode: "400001",
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, serviceID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.BookService(ctx, uuid.NewString(), serviceID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)

	suite.mockWalletRepo.AssertNotCalled(suite.T(), "SettleBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
