package services

import (
	"github.com/redis/go-redis/v9"

	portsrepo "github.com/elitecrew/elite-crew-backend/internal/core/ports/repositories"
	portssvc "github.com/elitecrew/elite-crew-backend/internal/core/ports/services"
	"github.com/elitecrew/elite-crew-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryContainer, redisClient *redis.Client) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.User, repos.Order, repos.Wallet, cfg.WalletOpeningBalance)
	container.GoogleAuth = NewGoogleOAuthService(cfg, container.User)

	container.Product = NewProductService(repos.Product, repos.Category)
	container.Service = NewServiceCatalogService(repos.Service)
	container.Category = NewCategoryService(repos.Category)

	container.Settlement = NewSettlementService(repos.Product, repos.Service, repos.Wallet)
	container.Order = NewOrderService(repos.Order)
	container.Wallet = NewWalletService(repos.Wallet)

	container.Review = NewReviewService(repos.Review, repos.Product, repos.Service, repos.User)
	container.Blog = NewBlogService(repos.Blog, repos.User, redisClient)

	container.Payment = NewPaymentService(cfg.PaymentKeyID, cfg.PaymentKeySecret)
	container.Contact = NewContactService(repos.Contact)

	return container
}
