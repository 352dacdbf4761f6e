package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
	"github.com/elitecrew/elite-crew-backend/internal/middleware"
)

// OrderHandler serves read access to settled purchases and bookings.
type OrderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService portssvc.OrderSvcFacade) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func registerOrderRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, services *portssvc.ServiceContainer) {
	h := NewOrderHandler(services.Order)

	rg.GET("/purchases/mine", h.ListMyPurchases)
	rg.GET("/purchases", admin, h.ListAllPurchases)
	rg.GET("/bookings/mine", h.ListMyBookings)
	rg.GET("/bookings", admin, h.ListAllBookings)
}

// ListMyPurchases godoc
// @Summary List my purchases
// @Tags orders
// @Produce json
// @Success 200 {array} dto.PurchaseResponse
// @Security BearerAuth
// @Router /purchases/mine [get]
func (h *OrderHandler) ListMyPurchases(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	purchases, err := h.orderService.ListMyPurchases(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// ListAllPurchases godoc
// @Summary List all purchases
// @Description Admin only.
// @Tags orders
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.PurchaseResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *OrderHandler) ListAllPurchases(c *gin.Context) {
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	purchases, err := h.orderService.ListAllPurchases(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// ListMyBookings godoc
// @Summary List my bookings
// @Tags orders
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Security BearerAuth
// @Router /bookings/mine [get]
func (h *OrderHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	bookings, err := h.orderService.ListMyBookings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListAllBookings godoc
// @Summary List all bookings
// @Description Admin only.
// @Tags orders
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.BookingResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [get]
func (h *OrderHandler) ListAllBookings(c *gin.Context) {
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	bookings, err := h.orderService.ListAllBookings(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
