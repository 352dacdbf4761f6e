package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
	"github.com/elitecrew/elite-crew-backend/internal/utils/pricing"
)

// settlementServiceImpl implements the SettlementSvcFacade interface. It
// prices the catalog item and delegates the balance deduction, ledger append
// and order insert to the wallet repository's settlement transaction.
type settlementServiceImpl struct {
	BaseService
	productRepo portsrepo.ProductRepository
	serviceRepo portsrepo.ServiceRepository
	walletRepo  portsrepo.WalletRepository
}

// NewSettlementService creates a new settlement service.
func NewSettlementService(productRepo portsrepo.ProductRepository, serviceRepo portsrepo.ServiceRepository, walletRepo portsrepo.WalletRepository) portssvc.SettlementSvcFacade {
	return &settlementServiceImpl{
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		walletRepo:  walletRepo,
	}
}

var _ portssvc.SettlementSvcFacade = (*settlementServiceImpl)(nil)

func (s *settlementServiceImpl) PurchaseProduct(ctx context.Context, userID string, req dto.PurchaseRequest) (*dto.PurchaseResult, error) {
	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		s.LogError(ctx, err, "Failed to find product for purchase", slog.String("product_id", req.ProductID))
		return nil, err
	}

	breakdown := pricing.Compute(product.Price)

	now := time.Now()
	purchase := domain.Purchase{
		PurchaseID:  uuid.NewString(),
		UserID:      userID,
		ProductID:   product.ProductID,
		CategoryID:  product.CategoryID,
		Date:        req.Date,
		Address:     req.Address,
		Pincode:     req.Pincode,
		Details:     req.Details,
		TotalAmount: breakdown.Total,
		Status:      domain.StatusPurchased,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	description := fmt.Sprintf("Purchased product: %s", product.Title)
	settled, balance, err := s.walletRepo.SettlePurchase(ctx, purchase, breakdown.Total, description)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to settle purchase",
			slog.String("user_id", userID),
			slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase settled",
		slog.String("purchase_id", settled.PurchaseID),
		slog.String("user_id", userID),
		slog.String("total", breakdown.Total.String()))

	return &dto.PurchaseResult{
		Message:   "Product purchased successfully",
		Purchase:  dto.ToPurchaseResponse(settled),
		Wallet:    balance,
		Breakdown: breakdown,
	}, nil
}

func (s *settlementServiceImpl) BookService(ctx context.Context, userID string, serviceID string, req dto.BookingRequest) (*dto.BookingResult, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("service not found")
		}
		s.LogError(ctx, err, "Failed to find service for booking", slog.String("service_id", serviceID))
		return nil, err
	}

	breakdown := pricing.Compute(service.Price)

	now := time.Now()
	booking := domain.Booking{
		BookingID:   uuid.NewString(),
		UserID:      userID,
		ServiceID:   service.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Address:     req.Address,
		Pincode:     req.Pincode,
		Details:     req.Details,
		TotalAmount: breakdown.Total,
		Status:      domain.StatusBooked,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	description := fmt.Sprintf("Booked service: %s", service.Title)
	settled, balance, err := s.walletRepo.SettleBooking(ctx, booking, breakdown.Total, description)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to settle booking",
			slog.String("user_id", userID),
			slog.String("service_id", serviceID))
		return nil, err
	}

	s.LogInfo(ctx, "Booking settled",
		slog.String("booking_id", settled.BookingID),
		slog.String("user_id", userID),
		slog.String("total", breakdown.Total.String()))

	return &dto.BookingResult{
		Message:   "Service booked successfully",
		Booking:   dto.ToBookingResponse(settled),
		Wallet:    balance,
		Breakdown: breakdown,
	}, nil
}
