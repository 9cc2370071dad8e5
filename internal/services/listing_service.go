package services

import (
	"context"
	"time"

	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// ListingService - вакансии. Публиковать может только владелец профиля
// компании; менять и удалять - только компания-владелец записи.
type ListingService struct {
	listingRepo repositories.ListingRepository
	profileRepo repositories.ProfileRepository
	feedCache   *cache.ListingCache
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	profileRepo repositories.ProfileRepository,
	feedCache *cache.ListingCache,
) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		profileRepo: profileRepo,
		feedCache:   feedCache,
	}
}

func (s *ListingService) PostListing(ctx context.Context, caller string, listing *models.JobListing) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}
	if listing.ID == "" {
		return apperrors.NewBadRequestError("Listing id is required")
	}

	// Гейт: публикация требует профиля компании
	if _, err := s.profileRepo.GetCompanyProfile(ctx, caller); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCompanyProfileRequired
		}
		return apperrors.InternalError(err)
	}

	listing.Company = caller
	// Клиентский postedAt - совещательный; ноль заменяем серверным временем
	if listing.PostedAt == 0 {
		listing.PostedAt = time.Now().UnixNano()
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return apperrors.ErrDuplicateID("listing", listing.ID)
		}
		return apperrors.InternalError(err)
	}

	s.feedCache.Invalidate(ctx)
	return nil
}

// UpdateListing - полная замена записи, кроме id и company
func (s *ListingService) UpdateListing(ctx context.Context, caller string, listing *models.JobListing) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}

	existing, err := s.listingRepo.GetByID(ctx, listing.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if existing.Company != caller {
		return apperrors.ErrNotOwner
	}

	listing.Company = existing.Company
	if listing.PostedAt == 0 {
		listing.PostedAt = existing.PostedAt
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return apperrors.InternalError(err)
	}

	s.feedCache.Invalidate(ctx)
	return nil
}

// DeleteListing удаляет вакансию. Отклики на нее НЕ каскадируются,
// они остаются с повисшим jobId.
func (s *ListingService) DeleteListing(ctx context.Context, caller, id string) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}

	existing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if existing.Company != caller {
		return apperrors.ErrNotOwner
	}

	if err := s.listingRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	s.feedCache.Invalidate(ctx)
	return nil
}

// GetListing - публичное чтение; nil без ошибки, если вакансии нет
func (s *ListingService) GetListing(ctx context.Context, id string) (*models.JobListing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return listing, nil
}

// ListAll - публичная лента, полный скан с кэшем поверх
func (s *ListingService) ListAll(ctx context.Context) ([]models.JobListing, error) {
	if listings, ok := s.feedCache.GetFeed(ctx); ok {
		return listings, nil
	}

	listings, err := s.listingRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.feedCache.SetFeed(ctx, listings)
	return listings, nil
}

// ListByCompany - вакансии самого вызывающего
func (s *ListingService) ListByCompany(ctx context.Context, caller string) ([]models.JobListing, error) {
	if caller == "" {
		return nil, apperrors.ErrAnonymousCaller
	}

	listings, err := s.listingRepo.ListByCompany(ctx, caller)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listings, nil
}
