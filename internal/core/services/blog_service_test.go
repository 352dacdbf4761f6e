package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/core/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// --- Mock BlogRepository ---
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) SaveBlog(ctx context.Context, blog domain.Blog) (*domain.Blog, error) {
	args := m.Called(ctx, blog)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) FindBlogByID(ctx context.Context, blogID string) (*domain.Blog, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Blog), args.Error(1)
}

func (m *MockBlogRepository) UpdateBlog(ctx context.Context, blog domain.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) DeleteBlog(ctx context.Context, blogID string) error {
	args := m.Called(ctx, blogID)
	return args.Error(0)
}

func (m *MockBlogRepository) ToggleLike(ctx context.Context, blogID string, userID string) (bool, int64, error) {
	args := m.Called(ctx, blogID, userID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) CountLikes(ctx context.Context, blogID string) (int64, error) {
	args := m.Called(ctx, blogID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepository) AddComment(ctx context.Context, comment domain.BlogComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockBlogRepository) ListCommentsByBlog(ctx context.Context, blogID string) ([]domain.BlogComment, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogComment), args.Error(1)
}

// --- Test Suite ---
type BlogServiceTestSuite struct {
	suite.Suite
	mockBlogRepo *MockBlogRepository
	mockUserRepo *MockUserRepository
	service      portssvc.BlogSvcFacade
}

func (suite *BlogServiceTestSuite) SetupTest() {
	suite.mockBlogRepo = new(MockBlogRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewBlogService(suite.mockBlogRepo, suite.mockUserRepo, nil)
}

func (suite *BlogServiceTestSuite) TestCreateBlog_Success() {
	ctx := context.Background()
	authorID := uuid.NewString()
	req := dto.CreateBlogRequest{Title: "Launch Notes", Content: "We shipped it."}

	suite.mockUserRepo.On("FindUserByID", ctx, authorID).Return(&domain.User{UserID: authorID, Name: "Asha Rao"}, nil).Once()
	suite.mockBlogRepo.On("SaveBlog", ctx, mock.MatchedBy(func(b domain.Blog) bool {
		return b.Title == req.Title && b.AuthorID == authorID && b.AuthorName == "Asha Rao"
	})).Return(&domain.Blog{
		BlogID:   uuid.NewString(),
		UniID:    "BLO0001",
		Title:    req.Title,
		AuthorID: authorID,
	}, nil).Once()

	blog, err := suite.service.CreateBlog(ctx, authorID, req)

	suite.Require().NoError(err)
	suite.Equal("BLO0001", blog.UniID)
	suite.mockBlogRepo.AssertExpectations(suite.T())
}

func (suite *BlogServiceTestSuite) TestToggleLike_LikeThenUnlike() {
	ctx := context.Background()
	blogID := uuid.NewString()
	userID := uuid.NewString()
	blog := &domain.Blog{BlogID: blogID, Title: "Launch Notes"}

	suite.mockBlogRepo.On("FindBlogByID", ctx, blogID).Return(blog, nil).Twice()
	suite.mockBlogRepo.On("ToggleLike", ctx, blogID, userID).Return(true, int64(1), nil).Once()

	liked, count, err := suite.service.ToggleLike(ctx, blogID, userID)
	suite.Require().NoError(err)
	suite.True(liked)
	suite.Equal(int64(1), count)

	suite.mockBlogRepo.On("ToggleLike", ctx, blogID, userID).Return(false, int64(0), nil).Once()

	liked, count, err = suite.service.ToggleLike(ctx, blogID, userID)
	suite.Require().NoError(err)
	suite.False(liked)
	suite.Equal(int64(0), count)

	suite.mockBlogRepo.AssertExpectations(suite.T())
}

func (suite *BlogServiceTestSuite) TestToggleLike_BlogNotFound() {
	ctx := context.Background()
	blogID := uuid.NewString()

	suite.mockBlogRepo.On("FindBlogByID", ctx, blogID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.ToggleLike(ctx, blogID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBlogRepo.AssertNotCalled(suite.T(), "ToggleLike", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BlogServiceTestSuite) TestGetBlogByID_FillsLikeCountAndComments() {
	ctx := context.Background()
	blogID := uuid.NewString()
	blog := &domain.Blog{BlogID: blogID, Title: "Launch Notes"}
	comments := []domain.BlogComment{
		{CommentID: uuid.NewString(), BlogID: blogID, Text: "Nice one"},
	}

	suite.mockBlogRepo.On("FindBlogByID", ctx, blogID).Return(blog, nil).Once()
	suite.mockBlogRepo.On("CountLikes", ctx, blogID).Return(int64(3), nil).Once()
	suite.mockBlogRepo.On("ListCommentsByBlog", ctx, blogID).Return(comments, nil).Once()

	got, gotComments, err := suite.service.GetBlogByID(ctx, blogID)

	suite.Require().NoError(err)
	suite.Equal(int64(3), got.LikeCount)
	suite.Len(gotComments, 1)
}

func (suite *BlogServiceTestSuite) TestAddComment_Success() {
	ctx := context.Background()
	blogID := uuid.NewString()
	userID := uuid.NewString()
	blog := &domain.Blog{BlogID: blogID, Title: "Launch Notes"}

	suite.mockBlogRepo.On("FindBlogByID", ctx, blogID).Return(blog, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID, Name: "Asha Rao"}, nil).Once()
	suite.mockBlogRepo.On("AddComment", ctx, mock.MatchedBy(func(c domain.BlogComment) bool {
		return c.BlogID == blogID && c.UserID == userID && c.Text == "Great write-up" && c.UserName == "Asha Rao"
	})).Return(nil).Once()

	comment, err := suite.service.AddComment(ctx, blogID, userID, "Great write-up")

	suite.Require().NoError(err)
	suite.Equal("Great write-up", comment.Text)
	suite.mockBlogRepo.AssertExpectations(suite.T())
}

func TestBlogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BlogServiceTestSuite))
}
