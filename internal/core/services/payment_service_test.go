package services_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	svc := services.NewPaymentService("key_id", "key_secret")

	sig := signPayment("key_secret", "order_ABC123", "pay_XYZ789")
	err := svc.VerifySignature(context.Background(), "order_ABC123", "pay_XYZ789", sig)

	assert.NoError(t, err)
}

func TestVerifySignature_Tampered(t *testing.T) {
	svc := services.NewPaymentService("key_id", "key_secret")

	sig := signPayment("key_secret", "order_ABC123", "pay_XYZ789")
	err := svc.VerifySignature(context.Background(), "order_ABC123", "pay_DIFFERENT", sig)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSignatureMismatch)
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	svc := services.NewPaymentService("key_id", "key_secret")

	sig := signPayment("other_secret", "order_ABC123", "pay_XYZ789")
	err := svc.VerifySignature(context.Background(), "order_ABC123", "pay_XYZ789", sig)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSignatureMismatch)
}

func TestVerifySignature_NoSecretConfigured(t *testing.T) {
	svc := services.NewPaymentService("key_id", "")

	err := svc.VerifySignature(context.Background(), "order_ABC123", "pay_XYZ789", "anything")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSignatureMismatch)
}

func TestCreateGatewayOrder(t *testing.T) {
	svc := services.NewPaymentService("key_id", "key_secret")

	order, err := svc.CreateGatewayOrder(context.Background(), dto.CreateGatewayOrderRequest{Amount: 500})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.OrderID, "order_"))
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.True(t, strings.HasPrefix(order.Receipt, "rcptid_"))
}

func TestCreateGatewayOrder_InvalidAmount(t *testing.T) {
	svc := services.NewPaymentService("key_id", "key_secret")

	order, err := svc.CreateGatewayOrder(context.Background(), dto.CreateGatewayOrderRequest{Amount: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	assert.Nil(t, order)
}
