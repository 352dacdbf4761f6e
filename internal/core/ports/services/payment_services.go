package services

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// PaymentSvcFacade defines payment gateway order creation and callback
// signature verification.
type PaymentSvcFacade interface {
	CreateGatewayOrder(ctx context.Context, req dto.CreateGatewayOrderRequest) (*dto.GatewayOrderResponse, error)
	// VerifySignature recomputes the HMAC-SHA256 over "orderID|paymentID" and
	// compares it to the submitted signature in constant time. Returns
	// apperrors.ErrSignatureMismatch on failure.
	VerifySignature(ctx context.Context, orderID string, paymentID string, signature string) error
}

// ContactSvcFacade persists contact form submissions.
type ContactSvcFacade interface {
	SubmitMessage(ctx context.Context, req dto.ContactRequest) error
}
