package memory

import (
	"context"
	"sort"
	"sync"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]models.PaymentTransaction
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: make(map[string]models.PaymentTransaction)}
}

func (r *PaymentRepository) Create(_ context.Context, tx *models.PaymentTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[tx.ID]; ok {
		return repositories.ErrDuplicate
	}
	r.payments[tx.ID] = *tx
	return nil
}

func (r *PaymentRepository) ListByUser(_ context.Context, user string) ([]models.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Пустой результат - непустой срез, чтобы наружу уходил [], а не null
	payments := make([]models.PaymentTransaction, 0)
	for _, p := range r.payments {
		if p.User == user {
			payments = append(payments, p)
		}
	}
	sortPayments(payments)
	return payments, nil
}

func (r *PaymentRepository) ListAll(_ context.Context) ([]models.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]models.PaymentTransaction, 0, len(r.payments))
	for _, p := range r.payments {
		payments = append(payments, p)
	}
	sortPayments(payments)
	return payments, nil
}

func sortPayments(payments []models.PaymentTransaction) {
	sort.Slice(payments, func(i, j int) bool {
		if payments[i].Timestamp != payments[j].Timestamp {
			return payments[i].Timestamp > payments[j].Timestamp
		}
		return payments[i].ID < payments[j].ID
	})
}
