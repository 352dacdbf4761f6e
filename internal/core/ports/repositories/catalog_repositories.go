package repositories

import (
	"context"

	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

// ServiceRepository defines persistence operations for services.
type ServiceRepository interface {
	SaveService(ctx context.Context, service domain.Service) (*domain.Service, error)
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	UpdateService(ctx context.Context, service domain.Service) error
	DeleteService(ctx context.Context, serviceID string) error
}

// CategoryRepository defines persistence operations for product categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.ProductCategory) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.ProductCategory, error)
	ListCategories(ctx context.Context) ([]domain.ProductCategory, error)
	UpdateCategory(ctx context.Context, category domain.ProductCategory) error
	DeleteCategory(ctx context.Context, categoryID string) error
}
