package repositories

import (
	"context"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type GormProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// SaveUserProfile - upsert по principal
func (r *GormProfileRepository) SaveUserProfile(ctx context.Context, profile *models.UserProfile) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.UserProfile{}).Where("principal = ?", profile.Principal).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return db.Model(&models.UserProfile{}).Where("principal = ?", profile.Principal).Select("*").Omit("principal").Updates(profile).Error
	}
	return translateGormError(db.Create(profile).Error)
}

func (r *GormProfileRepository) GetUserProfile(ctx context.Context, principal string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).First(&profile, "principal = ?", principal).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &profile, nil
}

func (r *GormProfileRepository) CreateCompanyProfile(ctx context.Context, profile *models.CompanyProfile) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.CompanyProfile{}).Where("owner = ?", profile.Owner).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return translateGormError(db.Create(profile).Error)
}

// UpdateCompanyProfile проверяет существование отдельным запросом:
// mysql без CLIENT_FOUND_ROWS возвращает RowsAffected == 0 при
// повторном сохранении тех же данных, и это не NotFound
func (r *GormProfileRepository) UpdateCompanyProfile(ctx context.Context, profile *models.CompanyProfile) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.CompanyProfile{}).Where("owner = ?", profile.Owner).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return db.Model(&models.CompanyProfile{}).
		Where("owner = ?", profile.Owner).
		Select("*").Omit("owner").
		Updates(profile).Error
}

func (r *GormProfileRepository) GetCompanyProfile(ctx context.Context, owner string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	if err := r.db.WithContext(ctx).First(&profile, "owner = ?", owner).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &profile, nil
}

func (r *GormProfileRepository) ListCompanyProfiles(ctx context.Context) ([]models.CompanyProfile, error) {
	profiles := make([]models.CompanyProfile, 0)
	err := r.db.WithContext(ctx).Order("owner").Find(&profiles).Error
	return profiles, err
}
