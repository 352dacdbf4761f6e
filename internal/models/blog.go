package models

import "time"

// Blog is the persisted representation of a blog post.
type Blog struct {
	BlogID   string `db:"blog_id"`
	UniID    string `db:"uni_id"`
	Title    string `db:"title"`
	Content  string `db:"content"`
	Image    string `db:"image"`
	AuthorID string `db:"author_id"`
	AuditFields
}

// BlogLike is one member of a blog's like-set.
type BlogLike struct {
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

// BlogComment is the persisted representation of a blog comment.
type BlogComment struct {
	CommentID string    `db:"comment_id"`
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}
