package dto

import (
	"time"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// CreateBlogRequest carries admin blog creation fields. The image arrives as
// a multipart file; the handler sets ImageURL after upload.
type CreateBlogRequest struct {
	Title    string `form:"title" binding:"required"`
	Content  string `form:"content" binding:"required"`
	ImageURL string `form:"-"`
}

// UpdateBlogRequest carries partial blog updates.
type UpdateBlogRequest struct {
	Title    *string `form:"title"`
	Content  *string `form:"content"`
	ImageURL string  `form:"-"`
}

// AddCommentRequest is the payload for commenting on a blog post.
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// BlogResponse is the public representation of a blog post.
type BlogResponse struct {
	BlogID     string    `json:"blogID"`
	UniID      string    `json:"uniID"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	AuthorID   string    `json:"authorID"`
	AuthorName string    `json:"authorName,omitempty"`
	LikeCount  int64     `json:"likeCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BlogDetailResponse adds the comment list to a single blog view.
type BlogDetailResponse struct {
	BlogResponse
	Comments []domain.BlogComment `json:"comments"`
}

// LikeResponse reports the resulting like-set state after a toggle.
type LikeResponse struct {
	Message   string `json:"message"`
	Liked     bool   `json:"liked"`
	LikeCount int64  `json:"likeCount"`
}

func ToBlogResponse(b *domain.Blog) BlogResponse {
	return BlogResponse{
		BlogID:     b.BlogID,
		UniID:      b.UniID,
		Title:      b.Title,
		Content:    b.Content,
		Image:      b.Image,
		AuthorID:   b.AuthorID,
		AuthorName: b.AuthorName,
		LikeCount:  b.LikeCount,
		CreatedAt:  b.CreatedAt,
	}
}

func ToBlogResponses(blogs []domain.Blog) []BlogResponse {
	out := make([]BlogResponse, len(blogs))
	for i := range blogs {
		out[i] = ToBlogResponse(&blogs[i])
	}
	return out
}
