package memory

import (
	"context"
	"sort"
	"sync"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

type ApplicationRepository struct {
	mu           sync.RWMutex
	applications map[string]models.JobApplication
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{applications: make(map[string]models.JobApplication)}
}

func (r *ApplicationRepository) Create(_ context.Context, application *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.applications[application.ID]; ok {
		return repositories.ErrDuplicate
	}
	// Пара (jobId, applicant) уникальна, как uniqueIndex в SQL-бэкенде
	for _, a := range r.applications {
		if a.JobID == application.JobID && a.Applicant == application.Applicant {
			return repositories.ErrDuplicate
		}
	}
	r.applications[application.ID] = *application
	return nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id string) (*models.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := application
	return &out, nil
}

func (r *ApplicationRepository) ExistsForJob(_ context.Context, jobID, applicant string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.applications {
		if a.JobID == jobID && a.Applicant == applicant {
			return true, nil
		}
	}
	return false, nil
}

func (r *ApplicationRepository) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	application, ok := r.applications[id]
	if !ok {
		return repositories.ErrNotFound
	}
	application.Status = status
	r.applications[id] = application
	return nil
}

func (r *ApplicationRepository) ListByJob(_ context.Context, jobID string) ([]models.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	applications := make([]models.JobApplication, 0)
	for _, a := range r.applications {
		if a.JobID == jobID {
			applications = append(applications, a)
		}
	}
	sortApplications(applications)
	return applications, nil
}

func (r *ApplicationRepository) ListByApplicant(_ context.Context, applicant string) ([]models.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	applications := make([]models.JobApplication, 0)
	for _, a := range r.applications {
		if a.Applicant == applicant {
			applications = append(applications, a)
		}
	}
	sortApplications(applications)
	return applications, nil
}

func (r *ApplicationRepository) ListAll(_ context.Context) ([]models.JobApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	applications := make([]models.JobApplication, 0, len(r.applications))
	for _, a := range r.applications {
		applications = append(applications, a)
	}
	sortApplications(applications)
	return applications, nil
}

func sortApplications(applications []models.JobApplication) {
	sort.Slice(applications, func(i, j int) bool {
		if applications[i].AppliedAt != applications[j].AppliedAt {
			return applications[i].AppliedAt < applications[j].AppliedAt
		}
		return applications[i].ID < applications[j].ID
	})
}
