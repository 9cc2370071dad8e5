package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AccessHandler      *AccessHandler
	ProfileHandler     *ProfileHandler
	ListingHandler     *ListingHandler
	ApplicationHandler *ApplicationHandler
	PaymentHandler     *PaymentHandler
}
