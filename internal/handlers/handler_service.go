package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
	"github.com/elitecrew/elite-crew-backend/internal/middleware"
	s3platform "github.com/elitecrew/elite-crew-backend/internal/platform/s3"
)

// ServiceHandler handles service catalog, booking and review requests.
type ServiceHandler struct {
	catalogService    portssvc.ServiceSvcFacade
	settlementService portssvc.SettlementSvcFacade
	reviewService     portssvc.ReviewSvcFacade
	s3Client          *s3platform.Client
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(catalogService portssvc.ServiceSvcFacade, settlementService portssvc.SettlementSvcFacade, reviewService portssvc.ReviewSvcFacade, s3Client *s3platform.Client) *ServiceHandler {
	return &ServiceHandler{
		catalogService:    catalogService,
		settlementService: settlementService,
		reviewService:     reviewService,
		s3Client:          s3Client,
	}
}

func registerServiceRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, services *portssvc.ServiceContainer, s3Client *s3platform.Client) {
	h := NewServiceHandler(services.Service, services.Settlement, services.Review, s3Client)

	grp := rg.Group("/services")
	{
		grp.GET("", h.ListServices)
		grp.GET("/:id", h.GetService)
		grp.GET("/:id/reviews", h.ListReviews)
		grp.POST("/:id/reviews", h.AddReview)
		grp.POST("/:id/book", h.Book)

		grp.POST("", admin, h.CreateService)
		grp.PUT("/:id", admin, h.UpdateService)
		grp.DELETE("/:id", admin, h.DeleteService)
	}
}

// ListServices godoc
// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} dto.ServiceResponse
// @Security BearerAuth
// @Router /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	items, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponses(items))
}

// GetService godoc
// @Summary Get a service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	item, err := h.catalogService.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(item))
}

// CreateService godoc
// @Summary Create a service
// @Description Admin only. Accepts multipart form with an optional image file.
// @Tags services
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := uploadImage(c, h.s3Client, "image", "services")
	if err != nil {
		respondError(c, err)
		return
	}
	req.ImageURL = imageURL

	item, err := h.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceResponse(item))
}

// UpdateService godoc
// @Summary Update a service
// @Description Admin only. Fields absent from the form keep their value.
// @Tags services
// @Accept mpfd
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := uploadImage(c, h.s3Client, "image", "services")
	if err != nil {
		respondError(c, err)
		return
	}
	req.ImageURL = imageURL

	item, err := h.catalogService.UpdateService(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(item))
}

// DeleteService godoc
// @Summary Delete a service
// @Description Admin only.
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.catalogService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// Book godoc
// @Summary Book a service
// @Description Settles the booking against the wallet: prices the service, deducts the total and records the order atomically.
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param booking body dto.BookingRequest true "Booking details"
// @Success 200 {object} dto.BookingResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id}/book [post]
func (h *ServiceHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.settlementService.BookService(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListReviews godoc
// @Summary List service reviews
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ReviewListResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id}/reviews [get]
func (h *ServiceHandler) ListReviews(c *gin.Context) {
	summary, err := h.reviewService.ListReviews(c.Request.Context(), domain.ItemKindService, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReviewListResponse(summary))
}

// AddReview godoc
// @Summary Review a service
// @Description One review per user per service.
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param review body dto.AddReviewRequest true "Review"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /services/{id}/reviews [post]
func (h *ServiceHandler) AddReview(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Rating must be between 1 and 5"})
		return
	}

	review, err := h.reviewService.AddReview(c.Request.Context(), userID, domain.ItemKindService, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
