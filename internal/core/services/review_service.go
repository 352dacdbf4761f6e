package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// reviewServiceImpl implements the ReviewSvcFacade interface
type reviewServiceImpl struct {
	BaseService
	reviewRepo  portsrepo.ReviewRepository
	productRepo portsrepo.ProductRepository
	serviceRepo portsrepo.ServiceRepository
	userRepo    portsrepo.UserRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo portsrepo.ReviewRepository, productRepo portsrepo.ProductRepository, serviceRepo portsrepo.ServiceRepository, userRepo portsrepo.UserRepository) portssvc.ReviewSvcFacade {
	return &reviewServiceImpl{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.ReviewSvcFacade = (*reviewServiceImpl)(nil)

func (s *reviewServiceImpl) AddReview(ctx context.Context, userID string, kind domain.ItemKind, itemID string, req dto.AddReviewRequest) (*domain.Review, error) {
	if err := s.ensureItemExists(ctx, kind, itemID); err != nil {
		return nil, err
	}

	// Friendly pre-check; the unique constraint is the real guard.
	existing, err := s.reviewRepo.FindReviewByUserAndItem(ctx, userID, kind, itemID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing review")
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateReview
	}

	userName := ""
	if user, err := s.userRepo.FindUserByID(ctx, userID); err == nil {
		userName = user.Name
	}

	review := domain.Review{
		ReviewID:  uuid.NewString(),
		ItemKind:  kind,
		ItemID:    itemID,
		UserID:    userID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepo.SaveReview(ctx, review); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateReview) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save review",
			slog.String("user_id", userID),
			slog.String("item_id", itemID))
		return nil, err
	}

	return &review, nil
}

func (s *reviewServiceImpl) ListReviews(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.ReviewSummary, error) {
	if err := s.ensureItemExists(ctx, kind, itemID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListReviewsByItem(ctx, kind, itemID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reviews", slog.String("item_id", itemID))
		return nil, err
	}

	summary := &domain.ReviewSummary{
		Reviews:      reviews,
		TotalReviews: len(reviews),
	}
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		summary.AverageRating = float64(sum) / float64(len(reviews))
	}
	return summary, nil
}

func (s *reviewServiceImpl) ensureItemExists(ctx context.Context, kind domain.ItemKind, itemID string) error {
	var err error
	switch kind {
	case domain.ItemKindProduct:
		_, err = s.productRepo.FindProductByID(ctx, itemID)
	case domain.ItemKindService:
		_, err = s.serviceRepo.FindServiceByID(ctx, itemID)
	default:
		return apperrors.NewBadRequestError("unknown item kind")
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("item not found")
		}
		return err
	}
	return nil
}
