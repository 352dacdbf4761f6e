package repositories

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// ReviewRepository defines persistence operations for catalog item reviews.
// The storage layer enforces uniqueness on (item_kind, item_id, user_id);
// SaveReview returns apperrors.ErrDuplicateReview on violation.
type ReviewRepository interface {
	SaveReview(ctx context.Context, review domain.Review) error
	FindReviewByUserAndItem(ctx context.Context, userID string, kind domain.ItemKind, itemID string) (*domain.Review, error)
	ListReviewsByItem(ctx context.Context, kind domain.ItemKind, itemID string) ([]domain.Review, error)
}
