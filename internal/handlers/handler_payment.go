package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// PaymentHandler handles payment gateway order creation and verification.
type PaymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService portssvc.PaymentSvcFacade) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func registerPaymentRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewPaymentHandler(services.Payment)

	payments := rg.Group("/payments")
	{
		payments.POST("/order", h.CreateOrder)
		payments.POST("/verify", h.Verify)
	}
}

// CreateOrder godoc
// @Summary Create a payment gateway order
// @Tags payments
// @Accept json
// @Produce json
// @Param order body dto.CreateGatewayOrderRequest true "Amount in whole currency units"
// @Success 200 {object} dto.GatewayOrderResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateGatewayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.paymentService.CreateGatewayOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Verify godoc
// @Summary Verify a payment gateway callback
// @Description Recomputes the callback signature server side and rejects mismatches.
// @Tags payments
// @Accept json
// @Produce json
// @Param callback body dto.VerifyPaymentRequest true "Gateway callback fields"
// @Success 200 {object} dto.VerifyPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.paymentService.VerifySignature(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{Success: true})
}
