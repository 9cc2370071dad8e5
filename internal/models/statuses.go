package models

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
	UserRoleGuest UserRole = "guest"
)

// Статусы ниже - это соглашение между клиентами, а не закрытый enum.
// Сторы принимают статус как непрозрачную строку.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// ValidUserRole проверяет, что роль известна реестру
func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRoleGuest:
		return true
	}
	return false
}
