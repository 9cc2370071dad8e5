package memory

import (
	"context"
	"sync"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRepository_DefaultGuest(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	role, err := store.Roles.Get(ctx, "unknown")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleGuest, role)

	count, err := store.Roles.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.Roles.Set(ctx, "alice", models.UserRoleAdmin))
	role, err = store.Roles.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, role)

	count, err = store.Roles.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestListingRepository_DuplicateAndOrdering(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Listings.Create(ctx, &models.JobListing{ID: "a", Company: "c1", PostedAt: 100}))
	require.NoError(t, store.Listings.Create(ctx, &models.JobListing{ID: "b", Company: "c1", PostedAt: 300}))
	require.NoError(t, store.Listings.Create(ctx, &models.JobListing{ID: "c", Company: "c2", PostedAt: 200}))

	err := store.Listings.Create(ctx, &models.JobListing{ID: "a", Company: "c9"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	all, err := store.Listings.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

	byCompany, err := store.Listings.ListByCompany(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, byCompany, 2)

	require.NoError(t, store.Listings.Delete(ctx, "b"))
	assert.ErrorIs(t, store.Listings.Delete(ctx, "b"), repositories.ErrNotFound)

	_, err = store.Listings.GetByID(ctx, "b")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

// Записи отдаются по значению: правка полученной записи не должна
// менять содержимое стора.
func TestListingRepository_Isolation(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	listing := &models.JobListing{ID: "a", Company: "c1", Title: "Dev"}
	listing.SetRequirements([]string{"go"})
	require.NoError(t, store.Listings.Create(ctx, listing))

	got, err := store.Listings.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Title = "Hacked"
	got.SetRequirements([]string{"evil"})

	fresh, err := store.Listings.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Dev", fresh.Title)
	assert.Equal(t, []string{"go"}, fresh.GetRequirements())
}

func TestApplicationRepository_UniquePair(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Applications.Create(ctx, &models.JobApplication{
		ID: "app-1", JobID: "job-1", Applicant: "alice", AppliedAt: 200,
	}))

	// Коллизия по id
	err := store.Applications.Create(ctx, &models.JobApplication{
		ID: "app-1", JobID: "job-2", Applicant: "bob",
	})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	// Коллизия по паре (jobId, applicant)
	err = store.Applications.Create(ctx, &models.JobApplication{
		ID: "app-2", JobID: "job-1", Applicant: "alice",
	})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	exists, err := store.Applications.ExistsForJob(ctx, "job-1", "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.Applications.ExistsForJob(ctx, "job-1", "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Applications.Create(ctx, &models.JobApplication{
		ID: "app-3", JobID: "job-1", Applicant: "bob", AppliedAt: 100,
	}))

	// Отклики по вакансии упорядочены по appliedAt по возрастанию
	apps, err := store.Applications.ListByJob(ctx, "job-1")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "app-3", apps[0].ID)
	assert.Equal(t, "app-1", apps[1].ID)

	require.NoError(t, store.Applications.UpdateStatus(ctx, "app-1", "accepted"))
	got, err := store.Applications.GetByID(ctx, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "accepted", got.Status)

	assert.ErrorIs(t, store.Applications.UpdateStatus(ctx, "ghost", "x"), repositories.ErrNotFound)
}

func TestPaymentRepository_Ledger(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Payments.Create(ctx, &models.PaymentTransaction{ID: "tx-1", User: "alice", Timestamp: 100}))
	require.NoError(t, store.Payments.Create(ctx, &models.PaymentTransaction{ID: "tx-2", User: "bob", Timestamp: 300}))
	require.NoError(t, store.Payments.Create(ctx, &models.PaymentTransaction{ID: "tx-3", User: "alice", Timestamp: 200}))

	assert.ErrorIs(t, store.Payments.Create(ctx, &models.PaymentTransaction{ID: "tx-1"}), repositories.ErrDuplicate)

	// Свежие платежи первыми
	mine, err := store.Payments.ListByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "tx-3", mine[0].ID)
	assert.Equal(t, "tx-1", mine[1].ID)

	all, err := store.Payments.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProfileRepository_SaveAndReplace(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	profile := &models.UserProfile{Principal: "alice", Name: "Alice", Email: "a@test.com"}
	require.NoError(t, store.Profiles.SaveUserProfile(ctx, profile))

	// Upsert: повторное сохранение заменяет запись целиком
	require.NoError(t, store.Profiles.SaveUserProfile(ctx, &models.UserProfile{Principal: "alice", Name: "Alice B"}))
	got, err := store.Profiles.GetUserProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
	assert.Empty(t, got.Email)

	_, err = store.Profiles.GetUserProfile(ctx, "ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, store.Profiles.CreateCompanyProfile(ctx, &models.CompanyProfile{Owner: "acme", Name: "Acme"}))
	assert.ErrorIs(t,
		store.Profiles.CreateCompanyProfile(ctx, &models.CompanyProfile{Owner: "acme", Name: "Dup"}),
		repositories.ErrDuplicate)

	assert.ErrorIs(t,
		store.Profiles.UpdateCompanyProfile(ctx, &models.CompanyProfile{Owner: "ghost", Name: "X"}),
		repositories.ErrNotFound)

	companies, err := store.Profiles.ListCompanyProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

// Конкурентные записи не должны ронять стор или терять записи.
func TestConcurrentWrites(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%26))
			_ = store.Listings.Create(ctx, &models.JobListing{ID: "job-" + id + string(rune('0'+n/26)), Company: "c"})
		}(i)
	}
	wg.Wait()

	all, err := store.Listings.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}

func TestFilteredListsNeverNil(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	payments, err := store.Payments.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, payments, "пустая выборка сериализуется как [], а не null")
	assert.Empty(t, payments)

	applications, err := store.Applications.ListByJob(ctx, "no-such-job")
	require.NoError(t, err)
	assert.NotNil(t, applications)

	applications, err = store.Applications.ListByApplicant(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, applications)

	listings, err := store.Listings.ListByCompany(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, listings)
}
