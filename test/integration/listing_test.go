package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostListingRequiresCompanyProfile(t *testing.T) {
	ts := GetTestServer(t)

	_, token := helpers.NewUser(t, "jobseeker")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, map[string]interface{}{
		"id":    helpers.NewPrincipal("job"),
		"title": "Backend Engineer",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestListingLifecycle(t *testing.T) {
	ts := GetTestServer(t)

	owner, ownerToken := helpers.NewUser(t, "company")
	helpers.CreateCompany(t, ts, ownerToken, "Owner Co")

	jobID := helpers.NewPrincipal("job")
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", ownerToken, map[string]interface{}{
		"id":               jobID,
		"company":          "spoofed-company",
		"title":            "Go Developer",
		"description":      "Build services",
		"category":         "engineering",
		"jobType":          "full-time",
		"location":         "Remote",
		"compensation":     "2500 USD",
		"responsibilities": []string{"api", "reviews"},
		"requirements":     []string{"go", "postgres"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Публикация вакансии должна быть успешной. Ответ: "+body)

	// Поле company в теле игнорируется, владелец - вызывающий
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+jobID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing models.JobListing
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Equal(t, owner, listing.Company)
	assert.Equal(t, "Go Developer", listing.Title)
	assert.NotZero(t, listing.PostedAt, "postedAt должен назначаться сервером")

	// Повторная публикация с тем же id отклоняется
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", ownerToken, map[string]interface{}{
		"id":    jobID,
		"title": "Another Title",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// Чужая компания не может менять запись
	_, otherToken := helpers.NewUser(t, "rival")
	helpers.CreateCompany(t, ts, otherToken, "Rival Co")
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+jobID, otherToken, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+jobID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Владелец обновляет запись, company сохраняется
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+jobID, ownerToken, map[string]interface{}{
		"title":    "Senior Go Developer",
		"location": "Hybrid",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+jobID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var updated models.JobListing
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Senior Go Developer", updated.Title)
	assert.Equal(t, owner, updated.Company)

	// Вакансия видна в общем списке и в списке владельца
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, jobID)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/mine", ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, jobID)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/mine", otherToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, jobID)

	// Удаление владельцем
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+jobID, ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+jobID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "null", body)

	// Повторное удаление - 404
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+jobID, ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateMissingListing(t *testing.T) {
	ts := GetTestServer(t)

	_, token := helpers.NewUser(t, "company")
	helpers.CreateCompany(t, ts, token, "Lonely Co")

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/no-such-job", token, map[string]interface{}{
		"title": "Ghost Job",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListingRequiresID(t *testing.T) {
	ts := GetTestServer(t)

	_, token := helpers.NewUser(t, "company")
	helpers.CreateCompany(t, ts, token, "Strict Co")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, map[string]interface{}{
		"title": "No ID Job",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestClientPostedAtPreserved(t *testing.T) {
	ts := GetTestServer(t)

	_, token := helpers.NewUser(t, "company")
	helpers.CreateCompany(t, ts, token, "Chrono Co")

	jobID := helpers.NewPrincipal("job")
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token, map[string]interface{}{
		"id":       jobID,
		"title":    "Archivist",
		"postedAt": 42,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+jobID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listing models.JobListing
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	assert.Equal(t, int64(42), listing.PostedAt)
}
