package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

func TestCreateUserHashesCredential(t *testing.T) {
	store := newStore(t)
	svc := NewUserService(store, nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserRequest{
		Name:     "Nueva Docente",
		Email:    "nueva@isfd26.edu.ar",
		Password: "secreto",
		Role:     models.RoleTeacher,
	})
	require.NoError(t, err)
	assert.Empty(t, created.Password)

	stored, err := store.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
	assert.NotEqual(t, "secreto", stored.Password)

	// The hashed credential still logs in.
	user, err := store.Authenticate(ctx, "nueva@isfd26.edu.ar", "secreto")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(newStore(t), nil, nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Name:     "Impostor",
		Email:    "ADMIN@isfd26.edu.ar",
		Password: "123",
		Role:     models.RoleAdmin,
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
}

func TestCreateUserValidatesRole(t *testing.T) {
	svc := NewUserService(newStore(t), nil, nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Name:     "Alguien",
		Email:    "alguien@isfd26.edu.ar",
		Password: "123",
		Role:     "SUPERVISOR",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	store := newStore(t)
	svc := NewUserService(store, nil, nil)
	ctx := context.Background()

	password := "nuevaclave"
	updated, err := svc.Update(ctx, "1", models.UserUpdate{Password: &password})
	require.NoError(t, err)
	assert.Empty(t, updated.Password)

	stored, err := store.GetUser(ctx, "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))

	user, err := store.Authenticate(ctx, "alumno@isfd26.edu.ar", "nuevaclave")
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestListStripsCredentials(t *testing.T) {
	svc := NewUserService(newStore(t), nil, nil)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, users)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}

func TestDeleteLastAdminProceeds(t *testing.T) {
	store := newStore(t)
	svc := NewUserService(store, nil, nil)
	ctx := context.Background()

	// User 5 is the only seeded admin. Deletion is logged but allowed.
	require.NoError(t, svc.Delete(ctx, "5"))

	user, err := store.GetUser(ctx, "5")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUnknownUserIsNotFound(t *testing.T) {
	svc := NewUserService(newStore(t), nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
