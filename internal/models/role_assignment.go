package models

import "time"

// RoleAssignment - явно назначенная роль principal-а.
// Principal без записи имеет роль guest.
type RoleAssignment struct {
	Principal string    `gorm:"primaryKey" json:"principal"`
	Role      UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
