package domain

import "time"

// Blog is an authored post with a like-set and an append-only comment list.
type Blog struct {
	BlogID     string `json:"blogID"`
	UniID      string `json:"uniID"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	AuthorID   string `json:"authorID"`
	AuthorName string `json:"authorName,omitempty"`
	LikeCount  int64  `json:"likeCount"`
	AuditFields
}

// BlogComment is a single comment on a blog post.
type BlogComment struct {
	CommentID string    `json:"commentID"`
	BlogID    string    `json:"blogID"`
	UserID    string    `json:"userID"`
	UserName  string    `json:"userName,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
