package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/repositories/memory"
)

// TestServer - httptest-сервер поверх in-memory стора.
// Store доступен напрямую для сидирования данных в тестах.
type TestServer struct {
	Server *httptest.Server
	Store  *repositories.Store
}

// NewTestServer создает и настраивает тестовый сервер.
// БД не нужна: используется память, как при DATABASE_DRIVER=memory.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	store := memory.NewStore()
	router := app.SetupRouter(cfg, store)

	server := httptest.NewServer(router)

	log.Println("✅ Тестовый сервер запущен поверх in-memory стора.")

	return &TestServer{
		Server: server,
		Store:  store,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
}

// SendRequest отправляет JSON-запрос и возвращает ответ вместе с телом.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
