package services

import (
	"context"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// ProfileService - профили пользователей и компаний.
// Владелец профиля всегда выводится из principal вызывающего:
// значение owner из тела запроса игнорируется.
type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// SaveUserProfile - upsert профиля вызывающего
func (s *ProfileService) SaveUserProfile(ctx context.Context, caller string, profile *models.UserProfile) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}

	profile.Principal = caller
	if err := s.profileRepo.SaveUserProfile(ctx, profile); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetUserProfile - публичное чтение; nil без ошибки, если профиля нет
func (s *ProfileService) GetUserProfile(ctx context.Context, principal string) (*models.UserProfile, error) {
	profile, err := s.profileRepo.GetUserProfile(ctx, principal)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// GetCallerProfile - профиль самого вызывающего (для profile-setup на клиенте)
func (s *ProfileService) GetCallerProfile(ctx context.Context, caller string) (*models.UserProfile, error) {
	if caller == "" {
		return nil, nil
	}
	return s.GetUserProfile(ctx, caller)
}

func (s *ProfileService) CreateCompanyProfile(ctx context.Context, caller string, profile *models.CompanyProfile) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}

	profile.Owner = caller
	if err := s.profileRepo.CreateCompanyProfile(ctx, profile); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return apperrors.ErrCompanyProfileExists
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileService) UpdateCompanyProfile(ctx context.Context, caller string, profile *models.CompanyProfile) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}

	// owner неизменяем: любое значение из запроса замещается caller-ом
	profile.Owner = caller
	if err := s.profileRepo.UpdateCompanyProfile(ctx, profile); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileService) GetCompanyProfile(ctx context.Context, owner string) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.GetCompanyProfile(ctx, owner)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileService) GetCallerCompanyProfile(ctx context.Context, caller string) (*models.CompanyProfile, error) {
	if caller == "" {
		return nil, nil
	}
	return s.GetCompanyProfile(ctx, caller)
}

func (s *ProfileService) ListCompanyProfiles(ctx context.Context) ([]models.CompanyProfile, error) {
	profiles, err := s.profileRepo.ListCompanyProfiles(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profiles, nil
}
