package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type GormRoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

func (r *GormRoleRepository) Get(ctx context.Context, principal string) (models.UserRole, error) {
	var assignment models.RoleAssignment
	err := r.db.WithContext(ctx).First(&assignment, "principal = ?", principal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Нет явного назначения - guest
			return models.UserRoleGuest, nil
		}
		return "", err
	}
	return assignment.Role, nil
}

func (r *GormRoleRepository) Set(ctx context.Context, principal string, role models.UserRole) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.RoleAssignment{}).Where("principal = ?", principal).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return db.Model(&models.RoleAssignment{}).Where("principal = ?", principal).Update("role", role).Error
	}
	return db.Create(&models.RoleAssignment{Principal: principal, Role: role}).Error
}

func (r *GormRoleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RoleAssignment{}).Count(&count).Error
	return count, err
}
