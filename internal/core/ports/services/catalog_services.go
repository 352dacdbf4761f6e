package services

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// ProductSvcFacade defines product catalog operations.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// ServiceSvcFacade defines service catalog operations.
type ServiceSvcFacade interface {
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.Service, error)
	GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest) (*domain.Service, error)
	DeleteService(ctx context.Context, serviceID string) error
}

// CategorySvcFacade defines product category operations.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.ProductCategory, error)
	ListCategories(ctx context.Context) ([]domain.ProductCategory, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.ProductCategory, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
