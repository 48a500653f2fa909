package mockstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/credentials"
	"github.com/isfdyt26/portal-api/internal/models"
)

func TestAuthenticateSeededAccount(t *testing.T) {
	m := newMock(t)

	user, err := m.Authenticate(context.Background(), "admin@isfd26.edu.ar", "123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// Email matching is case-insensitive.
	user, err = m.Authenticate(context.Background(), "ADMIN@isfd26.edu.ar", "123")
	require.NoError(t, err)
	assert.NotNil(t, user)

	user, err = m.Authenticate(context.Background(), "admin@isfd26.edu.ar", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestAuthenticateHashedAccount(t *testing.T) {
	m := newMock(t)

	hash, err := credentials.Hash("secreto")
	require.NoError(t, err)

	created, err := m.AddUser(context.Background(), models.User{
		Name:     "Nueva Docente",
		Email:    "nueva@isfd26.edu.ar",
		Password: hash,
		Role:     models.RoleTeacher,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Preferences)
	assert.Contains(t, created.Avatar, "dicebear.com")

	user, err := m.Authenticate(context.Background(), "nueva@isfd26.edu.ar", "secreto")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)
}

func TestUpdateUserMergesFields(t *testing.T) {
	m := newMock(t)

	name := "Alumno Renombrado"
	updated, err := m.UpdateUser(context.Background(), "1", models.UserUpdate{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "alumno@isfd26.edu.ar", updated.Email)

	missing, err := m.UpdateUser(context.Background(), "nope", models.UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetUserNotFoundIsNil(t *testing.T) {
	m := newMock(t)

	user, err := m.GetUser(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, user)
}
