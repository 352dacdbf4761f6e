package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	"github.com/elitecrew/elite-crew-backend/internal/models"
	"github.com/elitecrew/elite-crew-backend/internal/utils"
)

type PgxBlogRepository struct {
	BaseRepository
}

func newPgxBlogRepository(db *pgxpool.Pool) portsrepo.BlogRepository {
	return &PgxBlogRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BlogRepository = (*PgxBlogRepository)(nil)

func toDomainBlog(m models.Blog, authorName string, likeCount int64) domain.Blog {
	return domain.Blog{
		BlogID:     m.BlogID,
		UniID:      m.UniID,
		Title:      m.Title,
		Content:    m.Content,
		Image:      m.Image,
		AuthorID:   m.AuthorID,
		AuthorName: authorName,
		LikeCount:  likeCount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxBlogRepository) SaveBlog(ctx context.Context, blog domain.Blog) (*domain.Blog, error) {
	var seq int64
	if err := r.Pool.QueryRow(ctx, `SELECT nextval('blog_uni_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to allocate blog uni id: %w", err)
	}
	blog.UniID = utils.FormatUniID(utils.BlogIDPrefix, seq)

	query := `
        INSERT INTO blogs (blog_id, uni_id, title, content, image, author_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		blog.BlogID, blog.UniID, blog.Title, blog.Content, blog.Image, blog.AuthorID,
		blog.CreatedAt, blog.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save blog: %w", err)
	}
	return &blog, nil
}

const blogSelect = `
    SELECT b.blog_id, b.uni_id, b.title, b.content, b.image, COALESCE(b.author_id, ''), b.created_at, b.last_updated_at,
           COALESCE(u.name, ''),
           (SELECT COUNT(*) FROM blog_likes bl WHERE bl.blog_id = b.blog_id)
    FROM blogs b
    LEFT JOIN users u ON u.user_id = b.author_id
`

func scanBlog(row pgx.Row) (domain.Blog, error) {
	var m models.Blog
	var authorName string
	var likeCount int64
	err := row.Scan(
		&m.BlogID, &m.UniID, &m.Title, &m.Content, &m.Image, &m.AuthorID,
		&m.CreatedAt, &m.LastUpdatedAt, &authorName, &likeCount,
	)
	if err != nil {
		return domain.Blog{}, err
	}
	return toDomainBlog(m, authorName, likeCount), nil
}

func (r *PgxBlogRepository) FindBlogByID(ctx context.Context, blogID string) (*domain.Blog, error) {
	blog, err := scanBlog(r.Pool.QueryRow(ctx, blogSelect+` WHERE b.blog_id = $1;`, blogID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog by ID %s: %w", blogID, err)
	}
	return &blog, nil
}

func (r *PgxBlogRepository) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	rows, err := r.Pool.Query(ctx, blogSelect+` ORDER BY b.created_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	var blogs []domain.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog row: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog rows: %w", err)
	}
	return blogs, nil
}

func (r *PgxBlogRepository) UpdateBlog(ctx context.Context, blog domain.Blog) error {
	query := `
        UPDATE blogs SET
            title = $2,
            content = $3,
            image = $4,
            last_updated_at = $5
        WHERE blog_id = $1;
    `
	tag, err := r.Pool.Exec(ctx, query, blog.BlogID, blog.Title, blog.Content, blog.Image, blog.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update blog %s: %w", blog.BlogID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBlogRepository) DeleteBlog(ctx context.Context, blogID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM blogs WHERE blog_id = $1;`, blogID)
	if err != nil {
		return fmt.Errorf("failed to delete blog %s: %w", blogID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ToggleLike flips the like inside one transaction so the reported count
// matches the state after the flip.
func (r *PgxBlogRepository) ToggleLike(ctx context.Context, blogID string, userID string) (bool, int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, 0, err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM blog_likes WHERE blog_id = $1 AND user_id = $2;`, blogID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to remove blog like: %w", err)
	}

	liked := false
	if tag.RowsAffected() == 0 {
		_, err = tx.Exec(ctx, `INSERT INTO blog_likes (blog_id, user_id, created_at) VALUES ($1, $2, now());`, blogID, userID)
		if err != nil {
			return false, 0, fmt.Errorf("failed to insert blog like: %w", err)
		}
		liked = true
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM blog_likes WHERE blog_id = $1;`, blogID).Scan(&count); err != nil {
		return false, 0, fmt.Errorf("failed to count blog likes: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

func (r *PgxBlogRepository) CountLikes(ctx context.Context, blogID string) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_likes WHERE blog_id = $1;`, blogID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count blog likes: %w", err)
	}
	return count, nil
}

func (r *PgxBlogRepository) AddComment(ctx context.Context, comment domain.BlogComment) error {
	query := `
        INSERT INTO blog_comments (comment_id, blog_id, user_id, text, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		comment.CommentID, comment.BlogID, comment.UserID, comment.Text, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save blog comment: %w", err)
	}
	return nil
}

func (r *PgxBlogRepository) ListCommentsByBlog(ctx context.Context, blogID string) ([]domain.BlogComment, error) {
	query := `
        SELECT c.comment_id, c.blog_id, c.user_id, c.text, c.created_at, COALESCE(u.name, '')
        FROM blog_comments c
        LEFT JOIN users u ON u.user_id = c.user_id
        WHERE c.blog_id = $1
        ORDER BY c.created_at ASC;
    `
	rows, err := r.Pool.Query(ctx, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.BlogComment
	for rows.Next() {
		var m models.BlogComment
		var userName string
		if err := rows.Scan(&m.CommentID, &m.BlogID, &m.UserID, &m.Text, &m.CreatedAt, &userName); err != nil {
			return nil, fmt.Errorf("failed to scan blog comment row: %w", err)
		}
		comments = append(comments, domain.BlogComment{
			CommentID: m.CommentID,
			BlogID:    m.BlogID,
			UserID:    m.UserID,
			UserName:  userName,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog comment rows: %w", err)
	}
	return comments, nil
}
