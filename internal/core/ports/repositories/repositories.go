package repositories

// RepositoryContainer bundles every repository implementation for injection
// into the service layer.
type RepositoryContainer struct {
	User     UserRepository
	Product  ProductRepository
	Service  ServiceRepository
	Category CategoryRepository
	Order    OrderRepository
	Wallet   WalletRepository
	Review   ReviewRepository
	Blog     BlogRepository
	Contact  ContactRepository
}
