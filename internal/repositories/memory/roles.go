package memory

import (
	"context"
	"sync"

	"jobboard_backend/internal/models"
)

type RoleRepository struct {
	mu    sync.RWMutex
	roles map[string]models.UserRole
}

func NewRoleRepository() *RoleRepository {
	return &RoleRepository{roles: make(map[string]models.UserRole)}
}

func (r *RoleRepository) Get(_ context.Context, principal string) (models.UserRole, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if role, ok := r.roles[principal]; ok {
		return role, nil
	}
	return models.UserRoleGuest, nil
}

func (r *RoleRepository) Set(_ context.Context, principal string, role models.UserRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.roles[principal] = role
	return nil
}

func (r *RoleRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.roles)), nil
}
