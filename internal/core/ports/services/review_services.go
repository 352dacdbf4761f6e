package services

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// ReviewSvcFacade defines catalog item review operations.
type ReviewSvcFacade interface {
	// AddReview records a review. Returns apperrors.ErrDuplicateReview when
	// the user already reviewed this item.
	AddReview(ctx context.Context, userID string, kind domain.ItemKind, itemID string, req dto.AddReviewRequest) (*domain.Review, error)
	// ListReviews returns an item's reviews with the average rating computed
	// on read.
	ListReviews(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.ReviewSummary, error)
}
