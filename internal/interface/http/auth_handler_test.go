package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/protein-store/internal/infra/security"
	authuc "example.com/protein-store/internal/usecase/auth"
)

func setupAuthAPI(t *testing.T) *API {
	t.Helper()

	hasher := security.NewPasswordHasher(4)
	adminHash, err := hasher.Hash("protein123")
	require.NoError(t, err)

	tokenSvc := security.NewJWTService("test-secret", time.Hour)
	return NewAPI(Dependencies{
		AuthService:  authuc.NewService("admin", adminHash, hasher, tokenSvc),
		TokenService: tokenSvc,
	})
}

func TestLogin_Success(t *testing.T) {
	router := setupAuthAPI(t).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"protein123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response["token"])
	require.NotEmpty(t, response["expires_at"])
	require.Equal(t, "admin", response["username"])
}

func TestLogin_WrongPassword(t *testing.T) {
	router := setupAuthAPI(t).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	router := setupAuthAPI(t).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_IssuedTokenPassesMiddleware(t *testing.T) {
	router := setupAuthAPI(t).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"username":"admin","password":"protein123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	// A protected route with that token gets past the auth middleware.
	// The content service is nil here, so reaching the handler panics and
	// the Recoverer turns it into a 500; 401 would mean rejection.
	req = httptest.NewRequest(http.MethodPut, "/api/about", strings.NewReader(`{"title":"x","content":"y"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+response.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.NotEqual(t, http.StatusUnauthorized, rec.Code)
}
