package repositories

import (
	"context"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Create(ctx context.Context, tx *models.PaymentTransaction) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.PaymentTransaction{}).Where("id = ?", tx.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return translateGormError(db.Create(tx).Error)
}

func (r *GormPaymentRepository) ListByUser(ctx context.Context, user string) ([]models.PaymentTransaction, error) {
	// "user" - зарезервированное слово в postgres, поэтому условие задаем структурой
	payments := make([]models.PaymentTransaction, 0)
	err := r.db.WithContext(ctx).Where(&models.PaymentTransaction{User: user}).Order("timestamp DESC").Find(&payments).Error
	return payments, err
}

func (r *GormPaymentRepository) ListAll(ctx context.Context) ([]models.PaymentTransaction, error) {
	payments := make([]models.PaymentTransaction, 0)
	err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&payments).Error
	return payments, err
}
