package services

// ServiceContainer - контейнер всех сервисов приложения
type ServiceContainer struct {
	AccessService      *AccessService
	ProfileService     *ProfileService
	ListingService     *ListingService
	ApplicationService *ApplicationService
	PaymentService     *PaymentService
}
