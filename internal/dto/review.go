package dto

import (
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// AddReviewRequest is the payload for reviewing a catalog item.
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewListResponse returns an item's reviews with the on-read aggregate.
type ReviewListResponse struct {
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	TotalReviews  int             `json:"totalReviews"`
}

func ToReviewListResponse(summary *domain.ReviewSummary) ReviewListResponse {
	return ReviewListResponse{
		Reviews:       summary.Reviews,
		AverageRating: summary.AverageRating,
		TotalReviews:  summary.TotalReviews,
	}
}
