package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuchYouth/otgil-Re-Thread/internal/api/handler/v1/response"
	"github.com/MuchYouth/otgil-Re-Thread/internal/config"
	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
)

const testUserAgent = "otgil-test-client/1.0"

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost:8080",
			JWTSigningKey:      "test-signing-key",
			AdminSignupCode:    "TEST-ADMIN-CODE",
			AllowedCORSDomains: []string{"http://localhost:3000"},
		},
		Gin:        &config.GinConfig{Mode: gin.TestMode},
		Classifier: &config.ClassifierConfig{},
	}

	st := store.New()
	require.NoError(t, store.Seed(st))

	return NewServer(conf, st)
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", testUserAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	return w
}

func TestServer_Healthcheck(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_SignupLoginAndMe(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"nickname":         "Tester",
		"email":            "tester@example.com",
		"password":         "password1",
		"confirm_password": "password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "tester@example.com",
		"password": "password1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "Tester", login.User.Nickname)

	w = doJSON(t, s, http.MethodGet, "/api/v1/users/me", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, login.User.ID, me.ID)
}

func TestServer_LoginRejectsWrongPassword(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "eco@fashion.com",
		"password": "wrongpass1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_AuthedRoutesRequireToken(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/v1/credits/balance", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_TokenIsBoundToUserAgent(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"nickname":         "Roamer",
		"email":            "roamer@example.com",
		"password":         "password1",
		"confirm_password": "password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "roamer@example.com",
		"password": "password1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("User-Agent", "another-client/2.0")
	req.Header.Set("Authorization", "Bearer "+login.Token)

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
