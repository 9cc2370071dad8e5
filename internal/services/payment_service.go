package services

import (
	"context"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// PaymentService - журнал платежей. Леджер фиксирует заявленную
// транзакцию и не проверяет внешний платежный контур.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	roleRepo    repositories.RoleRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, roleRepo repositories.RoleRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, roleRepo: roleRepo}
}

func (s *PaymentService) Process(ctx context.Context, caller string, tx *models.PaymentTransaction) error {
	if caller == "" {
		return apperrors.ErrAnonymousCaller
	}
	if tx.ID == "" {
		return apperrors.NewBadRequestError("Transaction id is required")
	}
	if tx.Amount < 0 {
		return apperrors.ErrInvalidAmount
	}

	tx.User = caller
	tx.Timestamp = time.Now().UnixNano()
	if tx.Status == "" {
		tx.Status = models.PaymentStatusPending
	}

	if err := s.paymentRepo.Create(ctx, tx); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicate) {
			return apperrors.ErrDuplicateID("payment", tx.ID)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ListMine - платежи самого вызывающего
func (s *PaymentService) ListMine(ctx context.Context, caller string) ([]models.PaymentTransaction, error) {
	if caller == "" {
		return nil, apperrors.ErrAnonymousCaller
	}

	payments, err := s.paymentRepo.ListByUser(ctx, caller)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}

// ListAll - весь леджер, только для админа
func (s *PaymentService) ListAll(ctx context.Context, caller string) ([]models.PaymentTransaction, error) {
	if caller == "" {
		return nil, apperrors.ErrAnonymousCaller
	}

	role, err := s.roleRepo.Get(ctx, caller)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if role != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	payments, err := s.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}
