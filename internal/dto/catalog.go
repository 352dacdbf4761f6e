package dto

import (
	"time"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries admin product creation fields. The image
// arrives as a multipart file; the handler sets ImageURL after upload.
type CreateProductRequest struct {
	Title       string          `form:"title" binding:"required"`
	Description string          `form:"description"`
	Price       decimal.Decimal `form:"price" binding:"required"`
	CategoryID  string          `form:"categoryId" binding:"required"`
	ImageURL    string          `form:"-"`
}

// UpdateProductRequest carries partial product updates.
type UpdateProductRequest struct {
	Title       *string          `form:"title"`
	Description *string          `form:"description"`
	Price       *decimal.Decimal `form:"price"`
	CategoryID  *string          `form:"categoryId"`
	ImageURL    string           `form:"-"`
}

// ProductResponse is the public representation of a product.
type ProductResponse struct {
	ProductID   string          `json:"productID"`
	UniID       string          `json:"uniID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	CategoryID  string          `json:"categoryID"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateServiceRequest carries admin service creation fields.
type CreateServiceRequest struct {
	Title       string          `form:"title" binding:"required"`
	Description string          `form:"description"`
	Price       decimal.Decimal `form:"price" binding:"required"`
	ImageURL    string          `form:"-"`
}

// UpdateServiceRequest carries partial service updates.
type UpdateServiceRequest struct {
	Title       *string          `form:"title"`
	Description *string          `form:"description"`
	Price       *decimal.Decimal `form:"price"`
	ImageURL    string           `form:"-"`
}

// ServiceResponse is the public representation of a service.
type ServiceResponse struct {
	ServiceID   string          `json:"serviceID"`
	UniID       string          `json:"uniID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateCategoryRequest carries admin category creation fields.
type CreateCategoryRequest struct {
	Name     string `form:"name" binding:"required"`
	ImageURL string `form:"-"`
}

// UpdateCategoryRequest carries partial category updates.
type UpdateCategoryRequest struct {
	Name     *string `form:"name"`
	ImageURL string  `form:"-"`
}

// CategoryResponse is the public representation of a product category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Image      string `json:"image"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		UniID:       p.UniID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
	}
}

func ToProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:   s.ServiceID,
		UniID:       s.UniID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		Image:       s.Image,
		CreatedAt:   s.CreatedAt,
	}
}

func ToServiceResponses(services []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ToServiceResponse(&services[i])
	}
	return out
}

func ToCategoryResponse(c *domain.ProductCategory) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Name: c.Name, Image: c.Image}
}

func ToCategoryResponses(categories []domain.ProductCategory) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out
}
