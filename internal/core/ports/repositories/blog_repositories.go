package repositories

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// BlogRepository defines persistence operations for blog posts, their
// like-sets and comments.
type BlogRepository interface {
	SaveBlog(ctx context.Context, blog domain.Blog) (*domain.Blog, error)
	FindBlogByID(ctx context.Context, blogID string) (*domain.Blog, error)
	ListBlogs(ctx context.Context) ([]domain.Blog, error)
	UpdateBlog(ctx context.Context, blog domain.Blog) error
	DeleteBlog(ctx context.Context, blogID string) error

	// ToggleLike flips the user's membership in the blog's like-set and
	// returns the resulting liked state and like count.
	ToggleLike(ctx context.Context, blogID string, userID string) (liked bool, count int64, err error)
	CountLikes(ctx context.Context, blogID string) (int64, error)

	AddComment(ctx context.Context, comment domain.BlogComment) error
	ListCommentsByBlog(ctx context.Context, blogID string) ([]domain.BlogComment, error)
}
