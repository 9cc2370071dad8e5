package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bootstrap требует пустого реестра ролей, поэтому тест поднимает
// собственный сервер: общий к этому моменту уже может содержать админов.
func TestInitializeAccessControl(t *testing.T) {
	setTestEnv()
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	founder, founderToken := helpers.NewUser(t, "founder")
	_ = founder

	// Аноним не может выполнять bootstrap
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/access/initialize", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Первый вызывающий становится админом
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/access/initialize", founderToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Bootstrap должен быть успешным. Ответ: "+body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/access/role", founderToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "admin")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/access/is-admin", founderToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "true")

	// Повторный вызов тем же админом - no-op
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/access/initialize", founderToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Повторный вызов другим principal отклоняется
	_, otherToken := helpers.NewUser(t, "late")
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/access/initialize", otherToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestDefaultRoleIsGuest(t *testing.T) {
	ts := GetTestServer(t)

	_, token := helpers.NewUser(t, "nobody")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/access/role", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var roleResp struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &roleResp))
	assert.Equal(t, "guest", roleResp.Role)

	// Аноним тоже guest и не админ
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/access/role", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "guest")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/access/is-admin", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "false")
}

func TestAssignRole(t *testing.T) {
	ts := GetTestServer(t)

	admin, adminToken := helpers.NewUser(t, "admin")
	helpers.SeedAdmin(t, ts, admin)

	target, targetToken := helpers.NewUser(t, "target")

	// Админ назначает роль
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/access/roles", adminToken, map[string]string{
		"principal": target,
		"role":      "user",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Назначение роли должно быть успешным. Ответ: "+body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/access/role", targetToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "user")

	// Не-админ не может назначать роли
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/access/roles", targetToken, map[string]string{
		"principal": target,
		"role":      "admin",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Неизвестная роль отклоняется валидацией
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/access/roles", adminToken, map[string]string{
		"principal": target,
		"role":      "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Аноним получает 401
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/access/roles", "", map[string]string{
		"principal": target,
		"role":      "user",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestInvalidTokenRejected(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/access/role", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/access/initialize", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
