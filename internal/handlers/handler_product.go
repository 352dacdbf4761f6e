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

// ProductHandler handles product catalog, purchase and review requests.
type ProductHandler struct {
	productService    portssvc.ProductSvcFacade
	settlementService portssvc.SettlementSvcFacade
	reviewService     portssvc.ReviewSvcFacade
	s3Client          *s3platform.Client
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService portssvc.ProductSvcFacade, settlementService portssvc.SettlementSvcFacade, reviewService portssvc.ReviewSvcFacade, s3Client *s3platform.Client) *ProductHandler {
	return &ProductHandler{
		productService:    productService,
		settlementService: settlementService,
		reviewService:     reviewService,
		s3Client:          s3Client,
	}
}

func registerProductRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, services *portssvc.ServiceContainer, s3Client *s3platform.Client) {
	h := NewProductHandler(services.Product, services.Settlement, services.Review, s3Client)

	products := rg.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.GET("/:id/reviews", h.ListReviews)
		products.POST("/:id/reviews", h.AddReview)
		products.POST("/buy", h.Buy)

		products.POST("", admin, h.CreateProduct)
		products.PUT("/:id", admin, h.UpdateProduct)
		products.DELETE("/:id", admin, h.DeleteProduct)
	}
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Security BearerAuth
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// GetProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// CreateProduct godoc
// @Summary Create a product
// @Description Admin only. Accepts multipart form with an optional image file.
// @Tags products
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := uploadImage(c, h.s3Client, "image", "products")
	if err != nil {
		respondError(c, err)
		return
	}
	req.ImageURL = imageURL

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Admin only. Fields absent from the form keep their value.
// @Tags products
// @Accept mpfd
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := uploadImage(c, h.s3Client, "image", "products")
	if err != nil {
		respondError(c, err)
		return
	}
	req.ImageURL = imageURL

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Admin only.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// Buy godoc
// @Summary Purchase a product
// @Description Settles the purchase against the wallet: prices the product, deducts the total and records the order atomically.
// @Tags products
// @Accept json
// @Produce json
// @Param purchase body dto.PurchaseRequest true "Purchase details"
// @Success 200 {object} dto.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/buy [post]
func (h *ProductHandler) Buy(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.settlementService.PurchaseProduct(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListReviews godoc
// @Summary List product reviews
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ReviewListResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id}/reviews [get]
func (h *ProductHandler) ListReviews(c *gin.Context) {
	summary, err := h.reviewService.ListReviews(c.Request.Context(), domain.ItemKindProduct, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReviewListResponse(summary))
}

// AddReview godoc
// @Summary Review a product
// @Description One review per user per product.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param review body dto.AddReviewRequest true "Review"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id}/reviews [post]
func (h *ProductHandler) AddReview(c *gin.Context) {
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

	review, err := h.reviewService.AddReview(c.Request.Context(), userID, domain.ItemKindProduct, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
