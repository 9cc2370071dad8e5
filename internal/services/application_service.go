package services

import (
	"context"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// ApplicationService - отклики на вакансии.
// Инварианты: один отклик на пару (jobId, applicant); статус меняет
// только компания-владелец вакансии или админ.
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	listingRepo     repositories.ListingRepository
	roleRepo        repositories.RoleRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	listingRepo repositories.ListingRepository,
	roleRepo repositories.RoleRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		listingRepo:     listingRepo,
		roleRepo:        roleRepo,
	}
}

func (s *ApplicationService) isAdmin(ctx context.Context, caller string) (bool, error) {
	if caller == "" {
		return false, nil
	}
	role, err := s.roleRepo.Get(ctx, caller)
	if err != nil {
		return false, err
	}
	return role == models.UserRoleAdmin, nil
}

// Apply создает отклик. applicant и status из запроса игнорируются:
// applicant всегда caller, статус всегда pending.
func (s *ApplicationService) Apply(ctx context.Context, caller string, application *models.JobApplication) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}
	if application.ID == "" {
		return apperrors.NewBadRequestError("Application id is required")
	}

	// Вакансия должна существовать на момент отклика
	if _, err := s.listingRepo.GetByID(ctx, application.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	exists, err := s.applicationRepo.ExistsForJob(ctx, application.JobID, caller)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return apperrors.ErrDuplicateApplication
	}

	application.Applicant = caller
	application.Status = models.ApplicationStatusPending
	application.AppliedAt = time.Now().UnixNano()

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return apperrors.ErrDuplicateID("application", application.ID)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateStatus меняет статус отклика. newStatus - непрозрачная строка,
// enum на этом уровне не навязывается.
func (s *ApplicationService) UpdateStatus(ctx context.Context, caller, applicationID, newStatus string) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}
	if newStatus == "" {
		return apperrors.NewBadRequestError("Status is required")
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	admin, err := s.isAdmin(ctx, caller)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !admin {
		listing, err := s.listingRepo.GetByID(ctx, application.JobID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrNotFound) {
				// Вакансия удалена: повисший отклик может двигать только админ
				return apperrors.ErrNotFound(err)
			}
			return apperrors.InternalError(err)
		}
		if listing.Company != caller {
			return apperrors.ErrNotOwner
		}
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, newStatus); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListByJob - отклики на вакансию; только владелец вакансии или админ
// (защита приватности откликнувшихся).
func (s *ApplicationService) ListByJob(ctx context.Context, caller, jobID string) ([]models.JobApplication, error) {
	if caller == "" {
		return nil, apperrors.ErrAnonymousCaller
	}

	admin, err := s.isAdmin(ctx, caller)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !admin {
		listing, err := s.listingRepo.GetByID(ctx, jobID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		if listing.Company != caller {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	applications, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// ListMine - отклики самого вызывающего
func (s *ApplicationService) ListMine(ctx context.Context, caller string) ([]models.JobApplication, error) {
	if caller == "" {
		return nil, apperrors.ErrAnonymousCaller
	}

	applications, err := s.applicationRepo.ListByApplicant(ctx, caller)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// ListAll - все отклики, только для админа
func (s *ApplicationService) ListAll(ctx context.Context, caller string) ([]models.JobApplication, error) {
	if caller == "" {
		return nil, apperrors.ErrAnonymousCaller
	}

	admin, err := s.isAdmin(ctx, caller)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !admin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applications, err := s.applicationRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}
