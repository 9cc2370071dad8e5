package services

import (
	"context"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/repositories/memory"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationFixture(t *testing.T) (*ApplicationService, *repositories.Store) {
	store := memory.NewStore()
	svc := NewApplicationService(store.Applications, store.Listings, store.Roles)
	ctx := context.Background()

	require.NoError(t, store.Listings.Create(ctx, &models.JobListing{
		ID:      "job-1",
		Company: "acme",
		Title:   "Dev",
	}))
	require.NoError(t, store.Roles.Set(ctx, "root", models.UserRoleAdmin))
	return svc, store
}

func TestApplicationService_Apply(t *testing.T) {
	svc, _ := newApplicationFixture(t)
	ctx := context.Background()

	app := &models.JobApplication{
		ID:        "app-1",
		JobID:     "job-1",
		Applicant: "spoofed",
		Status:    "accepted",
	}
	require.NoError(t, svc.Apply(ctx, "alice", app))
	assert.Equal(t, "alice", app.Applicant, "applicant из запроса игнорируется")
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.NotZero(t, app.AppliedAt)

	// Один отклик на вакансию на человека
	err := svc.Apply(ctx, "alice", &models.JobApplication{ID: "app-2", JobID: "job-1"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)

	// Другой человек на ту же вакансию - можно
	require.NoError(t, svc.Apply(ctx, "bob", &models.JobApplication{ID: "app-3", JobID: "job-1"}))

	// Вакансия должна существовать
	err = svc.Apply(ctx, "carol", &models.JobApplication{ID: "app-4", JobID: "ghost"})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Аноним и пустой id отклоняются
	assert.ErrorIs(t, svc.Apply(ctx, "", &models.JobApplication{ID: "x", JobID: "job-1"}), apperrors.ErrAnonymousCaller)
	require.Error(t, svc.Apply(ctx, "carol", &models.JobApplication{JobID: "job-1"}))
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	svc, store := newApplicationFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Apply(ctx, "alice", &models.JobApplication{ID: "app-1", JobID: "job-1"}))

	// Только владелец вакансии или админ
	assert.ErrorIs(t, svc.UpdateStatus(ctx, "mallory", "app-1", "accepted"), apperrors.ErrNotOwner)
	require.NoError(t, svc.UpdateStatus(ctx, "acme", "app-1", "accepted"))

	mine, err := svc.ListMine(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "accepted", mine[0].Status)

	// Статус - непрозрачная строка
	require.NoError(t, svc.UpdateStatus(ctx, "root", "app-1", "shortlisted"))

	// Несуществующий отклик
	require.Error(t, svc.UpdateStatus(ctx, "acme", "ghost", "accepted"))

	// Повисший отклик (вакансия удалена) может двигать только админ
	require.NoError(t, store.Listings.Delete(ctx, "job-1"))
	require.Error(t, svc.UpdateStatus(ctx, "acme", "app-1", "rejected"))
	require.NoError(t, svc.UpdateStatus(ctx, "root", "app-1", "rejected"))
}

func TestApplicationService_Listings(t *testing.T) {
	svc, _ := newApplicationFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Apply(ctx, "alice", &models.JobApplication{ID: "app-1", JobID: "job-1"}))
	require.NoError(t, svc.Apply(ctx, "bob", &models.JobApplication{ID: "app-2", JobID: "job-1"}))

	// Владелец и админ видят отклики по вакансии
	apps, err := svc.ListByJob(ctx, "acme", "job-1")
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	apps, err = svc.ListByJob(ctx, "root", "job-1")
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	// Посторонний - нет
	_, err = svc.ListByJob(ctx, "alice", "job-1")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Полный список - только админ
	_, err = svc.ListAll(ctx, "alice")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	all, err := svc.ListAll(ctx, "root")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
