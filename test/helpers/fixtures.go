package helpers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewPrincipal возвращает уникальный principal для теста.
func NewPrincipal(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

// MintToken выпускает валидный токен для principal.
func MintToken(t *testing.T, principal string) string {
	token, err := auth.GenerateToken(config.GetConfig().JWT.Secret, principal, time.Hour)
	require.NoError(t, err, "Выпуск тестового токена не должен падать")
	return token
}

// NewUser возвращает свежий principal и его токен.
func NewUser(t *testing.T, prefix string) (string, string) {
	principal := NewPrincipal(prefix)
	return principal, MintToken(t, principal)
}

// SeedAdmin назначает principal роль admin напрямую в сторе.
func SeedAdmin(t *testing.T, ts *TestServer, principal string) {
	err := ts.Store.Roles.Set(context.Background(), principal, models.UserRoleAdmin)
	require.NoError(t, err, "Назначение роли admin не должно падать")
}

// CreateCompany создает профиль компании через API.
func CreateCompany(t *testing.T, ts *TestServer, token, name string) {
	body := map[string]interface{}{
		"name":        name,
		"description": "Test company",
		"location":    "Almaty",
		"industry":    "IT",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/companies", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Создание компании должно быть успешным. Ответ: "+bodyStr)
}

// CreateListing публикует вакансию через API и возвращает ее id.
func CreateListing(t *testing.T, ts *TestServer, token, title string) string {
	id := NewPrincipal("job")
	body := map[string]interface{}{
		"id":          id,
		"title":       title,
		"description": "Test listing",
		"category":    "engineering",
		"jobType":     "full-time",
		"location":    "Remote",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, body)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Публикация вакансии должна быть успешной. Ответ: "+bodyStr)
	return id
}
