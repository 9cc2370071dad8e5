package services

import (
	"context"
	"sync"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// AccessService - реестр ролей и bootstrap контроля доступа.
type AccessService struct {
	roleRepo repositories.RoleRepository

	// Сериализует Initialize: два конкурентных вызова на пустом
	// реестре не должны создать двух админов.
	initMu sync.Mutex
}

func NewAccessService(roleRepo repositories.RoleRepository) *AccessService {
	return &AccessService{roleRepo: roleRepo}
}

// GetCallerRole возвращает роль вызывающего; аноним и principal без
// назначения - guest.
func (s *AccessService) GetCallerRole(ctx context.Context, caller string) (models.UserRole, error) {
	if caller == "" {
		return models.UserRoleGuest, nil
	}
	return s.roleRepo.Get(ctx, caller)
}

// IsAdmin - удобный предикат поверх GetCallerRole
func (s *AccessService) IsAdmin(ctx context.Context, caller string) (bool, error) {
	role, err := s.GetCallerRole(ctx, caller)
	if err != nil {
		return false, err
	}
	return role == models.UserRoleAdmin, nil
}

// Initialize - одноразовый bootstrap: первый вызвавший на пустом реестре
// становится admin. Повторный вызов тем же админом - no-op, любым другим
// principal - AlreadyInitialized.
func (s *AccessService) Initialize(ctx context.Context, caller string) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}

	s.initMu.Lock()
	defer s.initMu.Unlock()

	count, err := s.roleRepo.Count(ctx)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if count == 0 {
		if err := s.roleRepo.Set(ctx, caller, models.UserRoleAdmin); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	}

	role, err := s.roleRepo.Get(ctx, caller)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if role == models.UserRoleAdmin {
		// Идемпотентный повтор существующим админом
		return nil
	}
	return apperrors.ErrAlreadyInitialized
}

// AssignRole назначает роль target, перезаписывая прежнее значение.
// Доступно только админам.
func (s *AccessService) AssignRole(ctx context.Context, caller, target string, role models.UserRole) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}
	if target == "" {
		return apperrors.NewBadRequestError("Target principal is required")
	}
	if !models.ValidUserRole(role) {
		return apperrors.NewBadRequestError("Unknown user role: " + string(role))
	}

	isAdmin, err := s.IsAdmin(ctx, caller)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !isAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.roleRepo.Set(ctx, target, role); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
