package memory

import (
	"context"
	"sort"
	"sync"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

type ListingRepository struct {
	mu       sync.RWMutex
	listings map[string]models.JobListing
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{listings: make(map[string]models.JobListing)}
}

func cloneListing(l models.JobListing) models.JobListing {
	l.Responsibilities = cloneJSON(l.Responsibilities)
	l.Requirements = cloneJSON(l.Requirements)
	return l
}

func (r *ListingRepository) Create(_ context.Context, listing *models.JobListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listing.ID]; ok {
		return repositories.ErrDuplicate
	}
	r.listings[listing.ID] = cloneListing(*listing)
	return nil
}

func (r *ListingRepository) GetByID(_ context.Context, id string) (*models.JobListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := cloneListing(listing)
	return &out, nil
}

func (r *ListingRepository) Update(_ context.Context, listing *models.JobListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listing.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.listings[listing.ID] = cloneListing(*listing)
	return nil
}

func (r *ListingRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *ListingRepository) ListAll(_ context.Context) ([]models.JobListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]models.JobListing, 0, len(r.listings))
	for _, l := range r.listings {
		listings = append(listings, cloneListing(l))
	}
	sortListings(listings)
	return listings, nil
}

func (r *ListingRepository) ListByCompany(_ context.Context, company string) ([]models.JobListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]models.JobListing, 0)
	for _, l := range r.listings {
		if l.Company == company {
			listings = append(listings, cloneListing(l))
		}
	}
	sortListings(listings)
	return listings, nil
}

// Свежие вакансии первыми, как и у SQL-бэкенда
func sortListings(listings []models.JobListing) {
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].PostedAt != listings[j].PostedAt {
			return listings[i].PostedAt > listings[j].PostedAt
		}
		return listings[i].ID < listings[j].ID
	})
}
