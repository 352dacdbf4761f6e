package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
	"github.com/elitecrew/elite-crew-backend/internal/middleware"
)

// WalletHandler handles wallet top-up and ledger requests.
type WalletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService portssvc.WalletSvcFacade) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// RegisterWalletRoutes mounts the wallet endpoints on the given group.
func RegisterWalletRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, services *portssvc.ServiceContainer) {
	h := NewWalletHandler(services.Wallet)

	wallet := rg.Group("/wallet")
	{
		wallet.POST("/topup", h.TopUp)
		wallet.GET("/transactions", h.ListMyTransactions)
		wallet.GET("/transactions/all", admin, h.ListAllTransactions)
	}
}

// TopUp godoc
// @Summary Top up the wallet
// @Description Adds funds to the caller's wallet and appends a ledger entry.
// @Tags wallet
// @Accept json
// @Produce json
// @Param topup body dto.TopUpRequest true "Amount to add"
// @Success 200 {object} dto.TopUpResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/topup [post]
func (h *WalletHandler) TopUp(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	balance, err := h.walletService.TopUp(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TopUpResponse{Message: "Wallet topped up successfully", Wallet: balance})
}

// ListMyTransactions godoc
// @Summary List my wallet transactions
// @Tags wallet
// @Produce json
// @Success 200 {array} dto.WalletTransactionResponse
// @Security BearerAuth
// @Router /wallet/transactions [get]
func (h *WalletHandler) ListMyTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	txns, err := h.walletService.ListMyTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletTransactionResponses(txns))
}

// ListAllTransactions godoc
// @Summary List all wallet transactions
// @Description Admin only.
// @Tags wallet
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.WalletTransactionResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/transactions/all [get]
func (h *WalletHandler) ListAllTransactions(c *gin.Context) {
	var params dto.ListWalletTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	txns, err := h.walletService.ListAllTransactions(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletTransactionResponses(txns))
}
