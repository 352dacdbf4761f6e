package services

// ServiceContainer bundles every service facade for injection into the
// handler layer.
type ServiceContainer struct {
	User       UserSvcFacade
	GoogleAuth GoogleOAuthSvcFacade
	Product    ProductSvcFacade
	Service    ServiceSvcFacade
	Category   CategorySvcFacade
	Settlement SettlementSvcFacade
	Order      OrderSvcFacade
	Wallet     WalletSvcFacade
	Review     ReviewSvcFacade
	Blog       BlogSvcFacade
	Payment    PaymentSvcFacade
	Contact    ContactSvcFacade
}
