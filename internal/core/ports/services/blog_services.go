package services

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// BlogSvcFacade defines blog post, like and comment operations.
type BlogSvcFacade interface {
	CreateBlog(ctx context.Context, authorID string, req dto.CreateBlogRequest) (*domain.Blog, error)
	GetBlogByID(ctx context.Context, blogID string) (*domain.Blog, []domain.BlogComment, error)
	ListBlogs(ctx context.Context) ([]domain.Blog, error)
	UpdateBlog(ctx context.Context, blogID string, req dto.UpdateBlogRequest) (*domain.Blog, error)
	DeleteBlog(ctx context.Context, blogID string) error

	// ToggleLike flips the user's like on the post and reports the new state.
	ToggleLike(ctx context.Context, blogID string, userID string) (liked bool, count int64, err error)
	AddComment(ctx context.Context, blogID string, userID string, text string) (*domain.BlogComment, error)
}
