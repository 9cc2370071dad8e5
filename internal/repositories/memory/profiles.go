package memory

import (
	"context"
	"sort"
	"sync"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

type ProfileRepository struct {
	mu        sync.RWMutex
	users     map[string]models.UserProfile    // principal -> профиль
	companies map[string]models.CompanyProfile // owner -> профиль
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		users:     make(map[string]models.UserProfile),
		companies: make(map[string]models.CompanyProfile),
	}
}

func cloneUserProfile(p models.UserProfile) models.UserProfile {
	p.Skills = cloneJSON(p.Skills)
	p.Portfolio = cloneJSON(p.Portfolio)
	return p
}

func (r *ProfileRepository) SaveUserProfile(_ context.Context, profile *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[profile.Principal] = cloneUserProfile(*profile)
	return nil
}

func (r *ProfileRepository) GetUserProfile(_ context.Context, principal string) (*models.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.users[principal]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := cloneUserProfile(profile)
	return &out, nil
}

func (r *ProfileRepository) CreateCompanyProfile(_ context.Context, profile *models.CompanyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[profile.Owner]; ok {
		return repositories.ErrDuplicate
	}
	r.companies[profile.Owner] = *profile
	return nil
}

func (r *ProfileRepository) UpdateCompanyProfile(_ context.Context, profile *models.CompanyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[profile.Owner]; !ok {
		return repositories.ErrNotFound
	}
	r.companies[profile.Owner] = *profile
	return nil
}

func (r *ProfileRepository) GetCompanyProfile(_ context.Context, owner string) (*models.CompanyProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.companies[owner]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := profile
	return &out, nil
}

func (r *ProfileRepository) ListCompanyProfiles(_ context.Context) ([]models.CompanyProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]models.CompanyProfile, 0, len(r.companies))
	for _, p := range r.companies {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Owner < profiles[j].Owner })
	return profiles, nil
}
