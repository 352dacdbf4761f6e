package services

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// paymentServiceImpl implements the PaymentSvcFacade interface
type paymentServiceImpl struct {
	BaseService
	keyID     string
	keySecret string
}

// NewPaymentService creates a new payment service.
func NewPaymentService(keyID string, keySecret string) portssvc.PaymentSvcFacade {
	return &paymentServiceImpl{keyID: keyID, keySecret: keySecret}
}

var _ portssvc.PaymentSvcFacade = (*paymentServiceImpl)(nil)

func (s *paymentServiceImpl) CreateGatewayOrder(ctx context.Context, req dto.CreateGatewayOrderRequest) (*dto.GatewayOrderResponse, error) {
	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	suffix := make([]byte, 7)
	if _, err := rand.Read(suffix); err != nil {
		s.LogError(ctx, err, "Failed to generate gateway order id")
		return nil, apperrors.NewInternalServerError("failed to create gateway order")
	}

	order := &dto.GatewayOrderResponse{
		OrderID:  "order_" + strings.ToUpper(hex.EncodeToString(suffix)),
		Amount:   req.Amount * 100,
		Currency: currency,
		Receipt:  fmt.Sprintf("rcptid_%d", time.Now().Unix()),
	}

	s.LogInfo(ctx, "Gateway order created",
		slog.String("order_id", order.OrderID),
		slog.Int64("amount", order.Amount))
	return order, nil
}

func (s *paymentServiceImpl) VerifySignature(ctx context.Context, orderID string, paymentID string, signature string) error {
	if s.keySecret == "" {
		s.LogError(ctx, apperrors.ErrInternal, "Payment key secret not configured")
		return apperrors.ErrSignatureMismatch
	}

	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		s.LogDebug(ctx, "Payment signature mismatch", slog.String("order_id", orderID))
		return apperrors.ErrSignatureMismatch
	}

	return nil
}
