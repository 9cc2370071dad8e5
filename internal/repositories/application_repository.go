package repositories

import (
	"context"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type GormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

func (r *GormApplicationRepository) Create(ctx context.Context, application *models.JobApplication) error {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.JobApplication{}).Where("id = ?", application.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	return translateGormError(db.Create(application).Error)
}

func (r *GormApplicationRepository) GetByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var application models.JobApplication
	if err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &application, nil
}

func (r *GormApplicationRepository) ExistsForJob(ctx context.Context, jobID, applicant string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("job_id = ? AND applicant = ?", jobID, applicant).
		Count(&count).Error
	return count > 0, err
}

func (r *GormApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *GormApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	// Find оставляет nil-срез при пустой выборке, а пустой список
	// должен сериализоваться как [], поэтому срез инициализируем заранее
	applications := make([]models.JobApplication, 0)
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("applied_at").Find(&applications).Error
	return applications, err
}

func (r *GormApplicationRepository) ListByApplicant(ctx context.Context, applicant string) ([]models.JobApplication, error) {
	applications := make([]models.JobApplication, 0)
	err := r.db.WithContext(ctx).Where("applicant = ?", applicant).Order("applied_at").Find(&applications).Error
	return applications, err
}

func (r *GormApplicationRepository) ListAll(ctx context.Context) ([]models.JobApplication, error) {
	applications := make([]models.JobApplication, 0)
	err := r.db.WithContext(ctx).Order("applied_at").Find(&applications).Error
	return applications, err
}
