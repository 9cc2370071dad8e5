package repositories

import (
	"context"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// RoleRepository - реестр ролей. Principal без явного назначения - guest.
type RoleRepository interface {
	Get(ctx context.Context, principal string) (models.UserRole, error)
	Set(ctx context.Context, principal string, role models.UserRole) error
	Count(ctx context.Context) (int64, error)
}

// ProfileRepository - профили пользователей и компаний.
type ProfileRepository interface {
	SaveUserProfile(ctx context.Context, profile *models.UserProfile) error
	GetUserProfile(ctx context.Context, principal string) (*models.UserProfile, error)

	CreateCompanyProfile(ctx context.Context, profile *models.CompanyProfile) error
	UpdateCompanyProfile(ctx context.Context, profile *models.CompanyProfile) error
	GetCompanyProfile(ctx context.Context, owner string) (*models.CompanyProfile, error)
	ListCompanyProfiles(ctx context.Context) ([]models.CompanyProfile, error)
}

// ListingRepository - вакансии.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.JobListing) error
	GetByID(ctx context.Context, id string) (*models.JobListing, error)
	Update(ctx context.Context, listing *models.JobListing) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.JobListing, error)
	ListByCompany(ctx context.Context, company string) ([]models.JobListing, error)
}

// ApplicationRepository - отклики на вакансии.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.JobApplication) error
	GetByID(ctx context.Context, id string) (*models.JobApplication, error)
	ExistsForJob(ctx context.Context, jobID, applicant string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
	ListByApplicant(ctx context.Context, applicant string) ([]models.JobApplication, error)
	ListAll(ctx context.Context) ([]models.JobApplication, error)
}

// PaymentRepository - журнал платежей.
type PaymentRepository interface {
	Create(ctx context.Context, tx *models.PaymentTransaction) error
	ListByUser(ctx context.Context, user string) ([]models.PaymentTransaction, error)
	ListAll(ctx context.Context) ([]models.PaymentTransaction, error)
}

// Store - контейнер всех репозиториев. Каждый стор эксклюзивно
// владеет своей таблицей; ссылки между сущностями - только по значению.
type Store struct {
	Roles        RoleRepository
	Profiles     ProfileRepository
	Listings     ListingRepository
	Applications ApplicationRepository
	Payments     PaymentRepository
}

// NewGormStore собирает Store поверх GORM (postgres/mysql)
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Roles:        NewRoleRepository(db),
		Profiles:     NewProfileRepository(db),
		Listings:     NewListingRepository(db),
		Applications: NewApplicationRepository(db),
		Payments:     NewPaymentRepository(db),
	}
}

// AutoMigrate создает таблицы всех сторов
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.RoleAssignment{},
		&models.UserProfile{},
		&models.CompanyProfile{},
		&models.JobListing{},
		&models.JobApplication{},
		&models.PaymentTransaction{},
	)
}
