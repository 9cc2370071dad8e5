package repositories

import (
	"context"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type GormListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

func (r *GormListingRepository) Create(ctx context.Context, listing *models.JobListing) error {
	db := r.db.WithContext(ctx)

	// id выдает клиент; коллизию отклоняем детерминированно, без перезаписи
	var count int64
	if err := db.Model(&models.JobListing{}).Where("id = ?", listing.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return translateGormError(db.Create(listing).Error)
}

func (r *GormListingRepository) GetByID(ctx context.Context, id string) (*models.JobListing, error) {
	var listing models.JobListing
	if err := r.db.WithContext(ctx).First(&listing, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &listing, nil
}

// Update - полная замена записи (id и company сервис не меняет)
func (r *GormListingRepository) Update(ctx context.Context, listing *models.JobListing) error {
	return r.db.WithContext(ctx).
		Model(&models.JobListing{}).
		Where("id = ?", listing.ID).
		Select("*").Omit("id").
		Updates(listing).Error
}

func (r *GormListingRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.JobListing{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormListingRepository) ListAll(ctx context.Context) ([]models.JobListing, error) {
	// Пустая лента - это [], а не null
	listings := make([]models.JobListing, 0)
	err := r.db.WithContext(ctx).Order("posted_at DESC").Find(&listings).Error
	return listings, err
}

func (r *GormListingRepository) ListByCompany(ctx context.Context, company string) ([]models.JobListing, error) {
	listings := make([]models.JobListing, 0)
	err := r.db.WithContext(ctx).Where("company = ?", company).Order("posted_at DESC").Find(&listings).Error
	return listings, err
}
