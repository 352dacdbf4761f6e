package dto

// CreateGatewayOrderRequest asks for a gateway order covering an amount in
// whole currency units.
type CreateGatewayOrderRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency"`
}

// GatewayOrderResponse mirrors the gateway order object handed to the client.
type GatewayOrderResponse struct {
	OrderID  string `json:"id"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// VerifyPaymentRequest carries the gateway callback fields to verify.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// VerifyPaymentResponse reports the verification outcome.
type VerifyPaymentResponse struct {
	Success bool `json:"success"`
}
