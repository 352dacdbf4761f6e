package services

import (
	"context"

	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// orderServiceImpl implements the OrderSvcFacade interface
type orderServiceImpl struct {
	BaseService
	orderRepo portsrepo.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo portsrepo.OrderRepository) portssvc.OrderSvcFacade {
	return &orderServiceImpl{orderRepo: orderRepo}
}

var _ portssvc.OrderSvcFacade = (*orderServiceImpl)(nil)

func (s *orderServiceImpl) ListMyPurchases(ctx context.Context, userID string) ([]dto.PurchaseResponse, error) {
	purchases, err := s.orderRepo.ListPurchasesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases")
		return nil, err
	}
	return dto.ToPurchaseResponses(purchases), nil
}

func (s *orderServiceImpl) ListAllPurchases(ctx context.Context, limit int, offset int) ([]dto.PurchaseResponse, error) {
	purchases, err := s.orderRepo.ListAllPurchases(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list all purchases")
		return nil, err
	}
	return dto.ToPurchaseResponses(purchases), nil
}

func (s *orderServiceImpl) ListMyBookings(ctx context.Context, userID string) ([]dto.BookingResponse, error) {
	bookings, err := s.orderRepo.ListBookingsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings")
		return nil, err
	}
	return dto.ToBookingResponses(bookings), nil
}

func (s *orderServiceImpl) ListAllBookings(ctx context.Context, limit int, offset int) ([]dto.BookingResponse, error) {
	bookings, err := s.orderRepo.ListAllBookings(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list all bookings")
		return nil, err
	}
	return dto.ToBookingResponses(bookings), nil
}
