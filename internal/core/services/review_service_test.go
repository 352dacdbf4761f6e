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

// --- Mock ReviewRepository ---
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) SaveReview(ctx context.Context, review domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindReviewByUserAndItem(ctx context.Context, userID string, kind domain.ItemKind, itemID string) (*domain.Review, error) {
	args := m.Called(ctx, userID, kind, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListReviewsByItem(ctx context.Context, kind domain.ItemKind, itemID string) ([]domain.Review, error) {
	args := m.Called(ctx, kind, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

// --- Test Suite ---
type ReviewServiceTestSuite struct {
	suite.Suite
	mockReviewRepo  *MockReviewRepository
	mockProductRepo *MockProductRepository
	mockServiceRepo *MockServiceRepository
	mockUserRepo    *MockUserRepository
	service         portssvc.ReviewSvcFacade
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	suite.mockReviewRepo = new(MockReviewRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewReviewService(suite.mockReviewRepo, suite.mockProductRepo, suite.mockServiceRepo, suite.mockUserRepo)
}

func (suite *ReviewServiceTestSuite) TestAddReview_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	product := &domain.Product{ProductID: uuid.NewString(), Title: "Gaming Mouse", Price: decimal.NewFromInt(1000)}
	req := dto.AddReviewRequest{Rating: 4, Comment: "Works well"}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockReviewRepo.On("FindReviewByUserAndItem", ctx, userID, domain.ItemKindProduct, product.ProductID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Name: "Asha Rao"}, nil).Once()
	suite.mockReviewRepo.On("SaveReview", ctx, mock.MatchedBy(func(r domain.Review) bool {
		return r.UserID == userID &&
			r.ItemKind == domain.ItemKindProduct &&
			r.ItemID == product.ProductID &&
			r.Rating == 4 &&
			r.UserName == "Asha Rao"
	})).Return(nil).Once()

	review, err := suite.service.AddReview(ctx, userID, domain.ItemKindProduct, product.ProductID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(review)
	suite.Equal(4, review.Rating)
	suite.mockReviewRepo.AssertExpectations(suite.T())
}

func (suite *ReviewServiceTestSuite) TestAddReview_Duplicate() {
	ctx := context.Background()
	userID := uuid.NewString()
	product := &domain.Product{ProductID: uuid.NewString(), Title: "Gaming Mouse"}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockReviewRepo.On("FindReviewByUserAndItem", ctx, userID, domain.ItemKindProduct, product.ProductID).Return(&domain.Review{
		ReviewID: uuid.NewString(),
		UserID:   userID,
		ItemID:   product.ProductID,
	}, nil).Once()

	review, err := suite.service.AddReview(ctx, userID, domain.ItemKindProduct, product.ProductID, dto.AddReviewRequest{Rating: 5})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateReview)
	suite.Nil(review)
	suite.mockReviewRepo.AssertNotCalled(suite.T(), "SaveReview", mock.Anything, mock.Anything)
}

func (suite *ReviewServiceTestSuite) TestAddReview_RaceLostToConstraint() {
	ctx := context.Background()
	userID := uuid.NewString()
	service := &domain.Service{ServiceID: uuid.NewString(), Title: "Deep Cleaning"}

	suite.mockServiceRepo.On("FindServiceByID", ctx, service.ServiceID).Return(service, nil).Once()
	suite.mockReviewRepo.On("FindReviewByUserAndItem", ctx, userID, domain.ItemKindService, service.ServiceID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Name: "Asha Rao"}, nil).Once()
	suite.mockReviewRepo.On("SaveReview", ctx, mock.Anything).Return(apperrors.ErrDuplicateReview).Once()

	review, err := suite.service.AddReview(ctx, userID, domain.ItemKindService, service.ServiceID, dto.AddReviewRequest{Rating: 3})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateReview)
	suite.Nil(review)
}

func (suite *ReviewServiceTestSuite) TestAddReview_ItemNotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	review, err := suite.service.AddReview(ctx, uuid.NewString(), domain.ItemKindProduct, productID, dto.AddReviewRequest{Rating: 5})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(review)
}

func (suite *ReviewServiceTestSuite) TestListReviews_AverageRating() {
	ctx := context.Background()
	product := &domain.Product{ProductID: uuid.NewString(), Title: "Gaming Mouse"}
	reviews := []domain.Review{
		{ReviewID: uuid.NewString(), Rating: 5},
		{ReviewID: uuid.NewString(), Rating: 4},
		{ReviewID: uuid.NewString(), Rating: 2},
	}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockReviewRepo.On("ListReviewsByItem", ctx, domain.ItemKindProduct, product.ProductID).Return(reviews, nil).Once()

	summary, err := suite.service.ListReviews(ctx, domain.ItemKindProduct, product.ProductID)

	suite.Require().NoError(err)
	suite.Equal(3, summary.TotalReviews)
	suite.InDelta(11.0/3.0, summary.AverageRating, 1e-9)
}

func (suite *ReviewServiceTestSuite) TestListReviews_Empty() {
	ctx := context.Background()
	product := &domain.Product{ProductID: uuid.NewString(), Title: "Gaming Mouse"}

	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockReviewRepo.On("ListReviewsByItem", ctx, domain.ItemKindProduct, product.ProductID).Return([]domain.Review{}, nil).Once()

	summary, err := suite.service.ListReviews(ctx, domain.ItemKindProduct, product.ProductID)

	suite.Require().NoError(err)
	suite.Equal(0, summary.TotalReviews)
	suite.Zero(summary.AverageRating)
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}
