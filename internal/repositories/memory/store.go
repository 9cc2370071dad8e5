// Package memory - встраиваемый бэкенд репозиториев поверх map+mutex.
// Используется в тестах и при database.driver = "memory". Каждая операция
// атомарно заменяет запись целиком: читатель видит либо старый, либо новый
// образ, никогда - частично обновленный.
package memory

import (
	"jobboard_backend/internal/repositories"
)

// NewStore собирает полный in-memory Store
func NewStore() *repositories.Store {
	return &repositories.Store{
		Roles:        NewRoleRepository(),
		Profiles:     NewProfileRepository(),
		Listings:     NewListingRepository(),
		Applications: NewApplicationRepository(),
		Payments:     NewPaymentRepository(),
	}
}

func cloneJSON(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
