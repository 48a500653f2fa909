package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	"github.com/isfdyt26/portal-api/internal/store/mockstore"
	"github.com/isfdyt26/portal-api/pkg/config"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

func newStore(t *testing.T) *mockstore.Mock {
	t.Helper()
	m := mockstore.New(config.MockConfig{}, mockstore.NewCourseCatalog(), zap.NewNop())
	require.NoError(t, m.Initialize(context.Background()))
	return m
}

func jwtConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test_secret", Expiration: time.Hour, Issuer: "portal-api"}
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := NewAuthService(newStore(t), jwtConfig(), nil, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@isfd26.edu.ar",
		Password: "123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Empty(t, resp.User.Password)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "portal-api", claims.Issuer)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLoginRejectsBadCredential(t *testing.T) {
	svc := NewAuthService(newStore(t), jwtConfig(), nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@isfd26.edu.ar",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := NewAuthService(newStore(t), jwtConfig(), nil, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "alumno@isfd26.edu.ar",
		Password: "123",
	})
	require.NoError(t, err)

	other := NewAuthService(newStore(t), config.JWTConfig{Secret: "another", Expiration: time.Hour}, nil, nil)
	_, err = other.ValidateToken(resp.AccessToken)
	assert.Error(t, err)
}
