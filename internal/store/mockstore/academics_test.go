package mockstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
)

func TestSaveCareerUpsert(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	saved, err := m.SaveCareer(ctx, models.Career{
		ID:    "c1",
		Name:  "Profesorado de Educación Primaria (Plan 2024)",
		Years: []string{"1° Año", "2° Año", "3° Año", "4° Año"},
	})
	require.NoError(t, err)
	assert.NotNil(t, saved.Subjects)

	careers, err := m.ListCareers(ctx)
	require.NoError(t, err)
	assert.Len(t, careers, 5)
	for _, c := range careers {
		if c.ID == "c1" {
			assert.Equal(t, "Profesorado de Educación Primaria (Plan 2024)", c.Name)
		}
	}

	created, err := m.SaveCareer(ctx, models.Career{Name: "Nueva Carrera", Years: []string{"1° Año"}})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	careers, err = m.ListCareers(ctx)
	require.NoError(t, err)
	assert.Len(t, careers, 6)
}

func TestDeleteCareer(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	require.NoError(t, m.DeleteCareer(ctx, "c2"))
	careers, err := m.ListCareers(ctx)
	require.NoError(t, err)
	assert.Len(t, careers, 4)
	for _, c := range careers {
		assert.NotEqual(t, "c2", c.ID)
	}
}

func TestSaveClassroomUpsert(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	saved, err := m.SaveClassroom(ctx, models.Classroom{ID: "a1", Name: "Aula 204 Bis", Capacity: 40, Location: "Planta Alta"})
	require.NoError(t, err)
	assert.Equal(t, "a1", saved.ID)

	rooms, err := m.ListClassrooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
	for _, r := range rooms {
		if r.ID == "a1" {
			assert.Equal(t, 40, r.Capacity)
		}
	}
}
