package services

import (
	"context"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories/memory"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_Process(t *testing.T) {
	store := memory.NewStore()
	svc := NewPaymentService(store.Payments, store.Roles)
	ctx := context.Background()

	tx := &models.PaymentTransaction{
		ID:           "tx-1",
		User:         "spoofed",
		Amount:       25.50,
		Currency:     "KZT",
		PaymentModel: "one-time",
	}
	require.NoError(t, svc.Process(ctx, "alice", tx))
	assert.Equal(t, "alice", tx.User, "user из запроса игнорируется")
	assert.Equal(t, models.PaymentStatusPending, tx.Status)
	assert.NotZero(t, tx.Timestamp)

	// Дубликат id
	err := svc.Process(ctx, "alice", &models.PaymentTransaction{ID: "tx-1", Amount: 1})
	require.Error(t, err)

	// Отрицательная сумма
	err = svc.Process(ctx, "alice", &models.PaymentTransaction{ID: "tx-2", Amount: -0.01})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	// Ноль допустим
	require.NoError(t, svc.Process(ctx, "alice", &models.PaymentTransaction{ID: "tx-3", Amount: 0}))

	// Явный статус сохраняется
	explicit := &models.PaymentTransaction{ID: "tx-4", Amount: 10, Status: models.PaymentStatusCompleted}
	require.NoError(t, svc.Process(ctx, "alice", explicit))
	assert.Equal(t, models.PaymentStatusCompleted, explicit.Status)

	// Аноним и пустой id
	assert.ErrorIs(t, svc.Process(ctx, "", &models.PaymentTransaction{ID: "tx-5"}), apperrors.ErrAnonymousCaller)
	require.Error(t, svc.Process(ctx, "alice", &models.PaymentTransaction{Amount: 1}))
}

func TestPaymentService_Lists(t *testing.T) {
	store := memory.NewStore()
	svc := NewPaymentService(store.Payments, store.Roles)
	ctx := context.Background()

	require.NoError(t, store.Roles.Set(ctx, "root", models.UserRoleAdmin))
	require.NoError(t, svc.Process(ctx, "alice", &models.PaymentTransaction{ID: "tx-1", Amount: 1}))
	require.NoError(t, svc.Process(ctx, "bob", &models.PaymentTransaction{ID: "tx-2", Amount: 2}))

	mine, err := svc.ListMine(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "tx-1", mine[0].ID)

	// Полный леджер - только админ
	_, err = svc.ListAll(ctx, "alice")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	all, err := svc.ListAll(ctx, "root")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
