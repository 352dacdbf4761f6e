package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
	s3platform "github.com/elitecrew/elite-crew-backend/internal/platform/s3"
)

// CategoryHandler handles product category requests.
type CategoryHandler struct {
	categoryService portssvc.CategorySvcFacade
	s3Client        *s3platform.Client
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService portssvc.CategorySvcFacade, s3Client *s3platform.Client) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, s3Client: s3Client}
}

func registerCategoryRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, services *portssvc.ServiceContainer, s3Client *s3platform.Client) {
	h := NewCategoryHandler(services.Category, s3Client)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.ListCategories)

		categories.POST("", admin, h.CreateCategory)
		categories.PUT("/:id", admin, h.UpdateCategory)
		categories.DELETE("/:id", admin, h.DeleteCategory)
	}
}

// ListCategories godoc
// @Summary List product categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// CreateCategory godoc
// @Summary Create a product category
// @Description Admin only. Accepts multipart form with an optional image file.
// @Tags categories
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := uploadImage(c, h.s3Client, "image", "categories")
	if err != nil {
		respondError(c, err)
		return
	}
	req.ImageURL = imageURL

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// UpdateCategory godoc
// @Summary Update a product category
// @Description Admin only.
// @Tags categories
// @Accept mpfd
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imageURL, err := uploadImage(c, h.s3Client, "image", "categories")
	if err != nil {
		respondError(c, err)
		return
	}
	req.ImageURL = imageURL

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary Delete a product category
// @Description Admin only. Fails with a conflict if products still reference the category.
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
