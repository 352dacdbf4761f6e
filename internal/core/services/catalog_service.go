package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	"github.com/elitecrew/elite-crew-backend/internal/core/domain"
	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/dto"
)

// productServiceImpl implements the ProductSvcFacade interface
type productServiceImpl struct {
	BaseService
	productRepo  portsrepo.ProductRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepository, categoryRepo portsrepo.CategoryRepository) portssvc.ProductSvcFacade {
	return &productServiceImpl{productRepo: productRepo, categoryRepo: categoryRepo}
}

var _ portssvc.ProductSvcFacade = (*productServiceImpl)(nil)

func (s *productServiceImpl) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, apperrors.NewBadRequestError("price cannot be negative")
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("category does not exist")
		}
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.ImageURL,
		CategoryID:  req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.productRepo.SaveProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "Failed to save product")
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", saved.ProductID), slog.String("uni_id", saved.UniID))
	return saved, nil
}

func (s *productServiceImpl) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	return products, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.NewBadRequestError("price cannot be negative")
		}
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewBadRequestError("category does not exist")
			}
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.ImageURL != "" {
		product.Image = req.ImageURL
	}
	product.LastUpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, err
	}

	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		}
		return err
	}
	return nil
}

// serviceCatalogImpl implements the ServiceSvcFacade interface
type serviceCatalogImpl struct {
	BaseService
	serviceRepo portsrepo.ServiceRepository
}

// NewServiceCatalogService creates a new bookable-service catalog service.
func NewServiceCatalogService(serviceRepo portsrepo.ServiceRepository) portssvc.ServiceSvcFacade {
	return &serviceCatalogImpl{serviceRepo: serviceRepo}
}

var _ portssvc.ServiceSvcFacade = (*serviceCatalogImpl)(nil)

func (s *serviceCatalogImpl) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.Service, error) {
	if req.Price.IsNegative() {
		return nil, apperrors.NewBadRequestError("price cannot be negative")
	}

	now := time.Now()
	service := domain.Service{
		ServiceID:   uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.serviceRepo.SaveService(ctx, service)
	if err != nil {
		s.LogError(ctx, err, "Failed to save service")
		return nil, err
	}

	s.LogInfo(ctx, "Service created", slog.String("service_id", saved.ServiceID), slog.String("uni_id", saved.UniID))
	return saved, nil
}

func (s *serviceCatalogImpl) GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find service by ID", slog.String("service_id", serviceID))
		}
		return nil, err
	}
	return service, nil
}

func (s *serviceCatalogImpl) ListServices(ctx context.Context) ([]domain.Service, error) {
	services, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list services")
		return nil, err
	}
	return services, nil
}

func (s *serviceCatalogImpl) UpdateService(ctx context.Context, serviceID string, req dto.UpdateServiceRequest) (*domain.Service, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.NewBadRequestError("price cannot be negative")
		}
		service.Price = *req.Price
	}
	if req.ImageURL != "" {
		service.Image = req.ImageURL
	}
	service.LastUpdatedAt = time.Now()

	if err := s.serviceRepo.UpdateService(ctx, *service); err != nil {
		s.LogError(ctx, err, "Failed to update service", slog.String("service_id", serviceID))
		return nil, err
	}

	return service, nil
}

func (s *serviceCatalogImpl) DeleteService(ctx context.Context, serviceID string) error {
	if err := s.serviceRepo.DeleteService(ctx, serviceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete service", slog.String("service_id", serviceID))
		}
		return err
	}
	return nil
}

// categoryServiceImpl implements the CategorySvcFacade interface
type categoryServiceImpl struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryServiceImpl{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.ProductCategory, error) {
	now := time.Now()
	category := domain.ProductCategory{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Image:      req.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewBadRequestError("a category with this name already exists")
		}
		s.LogError(ctx, err, "Failed to save category")
		return nil, err
	}

	return &category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	return categories, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.ProductCategory, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.ImageURL != "" {
		category.Image = req.ImageURL
	}
	category.LastUpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		}
		return err
	}
	return nil
}
