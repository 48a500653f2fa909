package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

func TestSaveCareerRejectsSubjectOutsidePlan(t *testing.T) {
	svc := NewAcademicService(newStore(t), nil, nil)

	_, err := svc.SaveCareer(context.Background(), SaveCareerRequest{
		Name:  "Nueva Carrera",
		Years: []string{"1° Año"},
		Subjects: []models.Subject{
			{ID: "x1", Name: "Materia Fantasma", Year: "4° Año"},
		},
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "Materia Fantasma")
}

func TestSaveCareerPreservesSubjects(t *testing.T) {
	store := newStore(t)
	svc := NewAcademicService(store, nil, nil)
	ctx := context.Background()

	// Rename c8 without resending its subject list.
	saved, err := svc.SaveCareer(ctx, SaveCareerRequest{
		ID:               "c8",
		Name:             "Tecnicatura en Desarrollo de Software (Plan 2025)",
		Years:            []string{"1° Año", "2° Año", "3° Año"},
		PreserveSubjects: true,
	})
	require.NoError(t, err)
	assert.Len(t, saved.Subjects, 6)

	careers, err := store.ListCareers(ctx)
	require.NoError(t, err)
	for _, c := range careers {
		if c.ID == "c8" {
			assert.Equal(t, "Tecnicatura en Desarrollo de Software (Plan 2025)", c.Name)
			assert.Len(t, c.Subjects, 6)
		}
	}
}

func TestSaveCareerWithoutPreserveDropsSubjects(t *testing.T) {
	svc := NewAcademicService(newStore(t), nil, nil)

	saved, err := svc.SaveCareer(context.Background(), SaveCareerRequest{
		ID:    "c8",
		Name:  "Tecnicatura Superior en Desarrollo de Software",
		Years: []string{"1° Año", "2° Año", "3° Año"},
	})
	require.NoError(t, err)
	assert.Empty(t, saved.Subjects)
}

func TestSaveClassroomValidatesCapacity(t *testing.T) {
	svc := NewAcademicService(newStore(t), nil, nil)

	_, err := svc.SaveClassroom(context.Background(), SaveClassroomRequest{
		Name:     "Aula Nueva",
		Capacity: 0,
		Location: "Planta Baja",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
