package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

const likeCountCacheTTL = 24 * time.Hour

// blogServiceImpl implements the BlogSvcFacade interface. Like counts are
// cached in redis when a client is configured; the database like-set stays
// the source of truth.
type blogServiceImpl struct {
	BaseService
	blogRepo    portsrepo.BlogRepository
	userRepo    portsrepo.UserRepository
	redisClient *redis.Client
}

// NewBlogService creates a new blog service. redisClient may be nil.
func NewBlogService(blogRepo portsrepo.BlogRepository, userRepo portsrepo.UserRepository, redisClient *redis.Client) portssvc.BlogSvcFacade {
	return &blogServiceImpl{
		blogRepo:    blogRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

var _ portssvc.BlogSvcFacade = (*blogServiceImpl)(nil)

func likeCountKey(blogID string) string {
	return fmt.Sprintf("blog:likes:%s", blogID)
}

func (s *blogServiceImpl) CreateBlog(ctx context.Context, authorID string, req dto.CreateBlogRequest) (*domain.Blog, error) {
	authorName := ""
	if author, err := s.userRepo.FindUserByID(ctx, authorID); err == nil {
		authorName = author.Name
	}

	now := time.Now()
	blog := domain.Blog{
		BlogID:     uuid.NewString(),
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.ImageURL,
		AuthorID:   authorID,
		AuthorName: authorName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.blogRepo.SaveBlog(ctx, blog)
	if err != nil {
		s.LogError(ctx, err, "Failed to save blog post")
		return nil, err
	}

	s.LogInfo(ctx, "Blog post created", slog.String("blog_id", saved.BlogID), slog.String("uni_id", saved.UniID))
	return saved, nil
}

func (s *blogServiceImpl) GetBlogByID(ctx context.Context, blogID string) (*domain.Blog, []domain.BlogComment, error) {
	blog, err := s.blogRepo.FindBlogByID(ctx, blogID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find blog post", slog.String("blog_id", blogID))
		}
		return nil, nil, err
	}

	blog.LikeCount = s.likeCount(ctx, blogID)

	comments, err := s.blogRepo.ListCommentsByBlog(ctx, blogID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list blog comments", slog.String("blog_id", blogID))
		return nil, nil, err
	}

	return blog, comments, nil
}

func (s *blogServiceImpl) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	blogs, err := s.blogRepo.ListBlogs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list blog posts")
		return nil, err
	}
	for i := range blogs {
		blogs[i].LikeCount = s.likeCount(ctx, blogs[i].BlogID)
	}
	return blogs, nil
}

func (s *blogServiceImpl) UpdateBlog(ctx context.Context, blogID string, req dto.UpdateBlogRequest) (*domain.Blog, error) {
	blog, err := s.blogRepo.FindBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.ImageURL != "" {
		blog.Image = req.ImageURL
	}
	blog.LastUpdatedAt = time.Now()

	if err := s.blogRepo.UpdateBlog(ctx, *blog); err != nil {
		s.LogError(ctx, err, "Failed to update blog post", slog.String("blog_id", blogID))
		return nil, err
	}

	return blog, nil
}

func (s *blogServiceImpl) DeleteBlog(ctx context.Context, blogID string) error {
	if err := s.blogRepo.DeleteBlog(ctx, blogID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete blog post", slog.String("blog_id", blogID))
		}
		return err
	}
	if s.redisClient != nil {
		s.redisClient.Del(ctx, likeCountKey(blogID))
	}
	return nil
}

func (s *blogServiceImpl) ToggleLike(ctx context.Context, blogID string, userID string) (bool, int64, error) {
	if _, err := s.blogRepo.FindBlogByID(ctx, blogID); err != nil {
		return false, 0, err
	}

	liked, count, err := s.blogRepo.ToggleLike(ctx, blogID, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to toggle like",
			slog.String("blog_id", blogID),
			slog.String("user_id", userID))
		return false, 0, err
	}

	if s.redisClient != nil {
		s.redisClient.Set(ctx, likeCountKey(blogID), count, likeCountCacheTTL)
	}

	return liked, count, nil
}

func (s *blogServiceImpl) AddComment(ctx context.Context, blogID string, userID string, text string) (*domain.BlogComment, error) {
	if _, err := s.blogRepo.FindBlogByID(ctx, blogID); err != nil {
		return nil, err
	}

	userName := ""
	if user, err := s.userRepo.FindUserByID(ctx, userID); err == nil {
		userName = user.Name
	}

	comment := domain.BlogComment{
		CommentID: uuid.NewString(),
		BlogID:    blogID,
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := s.blogRepo.AddComment(ctx, comment); err != nil {
		s.LogError(ctx, err, "Failed to add comment", slog.String("blog_id", blogID))
		return nil, err
	}

	return &comment, nil
}

// likeCount reads the cached count, falling back to the like-set on a miss.
func (s *blogServiceImpl) likeCount(ctx context.Context, blogID string) int64 {
	if s.redisClient != nil {
		if val, err := s.redisClient.Get(ctx, likeCountKey(blogID)).Result(); err == nil {
			if count, parseErr := strconv.ParseInt(val, 10, 64); parseErr == nil {
				return count
			}
		}
	}

	count, err := s.blogRepo.CountLikes(ctx, blogID)
	if err != nil {
		s.LogDebug(ctx, "Failed to count likes", slog.String("blog_id", blogID), slog.String("error", err.Error()))
		return 0
	}
	if s.redisClient != nil {
		s.redisClient.Set(ctx, likeCountKey(blogID), count, likeCountCacheTTL)
	}
	return count
}
