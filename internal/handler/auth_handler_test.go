package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/middleware"
	"github.com/isfdyt26/portal-api/internal/service"
	"github.com/isfdyt26/portal-api/internal/store/mockstore"
	"github.com/isfdyt26/portal-api/pkg/config"
)

func newAuthFixture(t *testing.T) (*gin.Engine, *service.AuthService, *mockstore.Mock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := mockstore.New(config.MockConfig{}, mockstore.NewCourseCatalog(), zap.NewNop())
	require.NoError(t, store.Initialize(context.Background()))

	auth := service.NewAuthService(store, config.JWTConfig{Secret: "test_secret", Expiration: time.Hour, Issuer: "portal-api"}, nil, nil)

	r := gin.New()
	r.POST("/auth/login", NewAuthHandler(auth).Login)
	return r, auth, store
}

func TestLoginEndpoint(t *testing.T) {
	r, _, _ := newAuthFixture(t)

	body := `{"email":"alumno@isfd26.edu.ar","password":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
			User        struct {
				ID       string `json:"id"`
				Password string `json:"password"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.AccessToken)
	assert.Equal(t, "1", envelope.Data.User.ID)
	assert.Empty(t, envelope.Data.User.Password)
}

func TestLoginEndpointRejectsBadCredential(t *testing.T) {
	r, _, _ := newAuthFixture(t)

	body := `{"email":"alumno@isfd26.edu.ar","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "INVALID_CREDENTIALS", envelope.Error.Code)
}

func TestJWTGuardedRoute(t *testing.T) {
	r, auth, store := newAuthFixture(t)

	notifications := service.NewNotificationService(store, nil, 0, nil, nil)
	guarded := r.Group("/api/v1")
	guarded.Use(middleware.JWT(auth))
	guarded.GET("/notifications/unread-count", NewNotificationHandler(notifications).UnreadCount)

	// Without a token the route refuses.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// With a freshly issued token the count comes back.
	loginBody := `{"email":"alumno@isfd26.edu.ar","password":"123"}`
	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(loginBody))
	loginReq.Header.Set("Content-Type", "application/json")
	loginW := httptest.NewRecorder()
	r.ServeHTTP(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(loginW.Body.Bytes(), &login))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil)
	req.Header.Set("Authorization", "Bearer "+login.Data.AccessToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 2, envelope.Data.Count)
}
