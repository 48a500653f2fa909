package mockstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
)

func TestFinalExamsForProjectsRegistration(t *testing.T) {
	m := newMock(t)

	sessions, err := m.FinalExamsFor(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, sessions, 4)

	for _, s := range sessions {
		if s.ID == "f3" {
			assert.True(t, s.IsRegistered)
			assert.Equal(t, 1, s.RegisteredCount)
		} else {
			assert.False(t, s.IsRegistered)
		}
	}
}

func TestToggleFinalRegistration(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	registered, err := m.ToggleFinalRegistration(ctx, "1", "f1")
	require.NoError(t, err)
	assert.True(t, registered)

	registered, err = m.ToggleFinalRegistration(ctx, "1", "f1")
	require.NoError(t, err)
	assert.False(t, registered)

	// An unknown exam is reported as unregistered without an error.
	registered, err = m.ToggleFinalRegistration(ctx, "1", "missing")
	require.NoError(t, err)
	assert.False(t, registered)
}

func TestAddFinalExamStartsEmpty(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	exam, err := m.AddFinalExam(ctx, models.FinalExam{
		SubjectName:          "Base de Datos",
		Date:                 "2024-07-20",
		Time:                 "18:00",
		Professor:            "Prof. Maria Sanchez",
		Classroom:            "Lab. Informática",
		RegisteredStudentIDs: []string{"1", "2"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, exam.ID)
	assert.Empty(t, exam.RegisteredStudentIDs)

	require.NoError(t, m.DeleteFinalExam(ctx, exam.ID))
	sessions, err := m.FinalExamsFor(ctx, "1")
	require.NoError(t, err)
	for _, s := range sessions {
		assert.NotEqual(t, exam.ID, s.ID)
	}
}
