package mockstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
)

func TestAddJustificationForcesPending(t *testing.T) {
	m := newMock(t)

	created, err := m.AddJustification(context.Background(), models.JustificationRequest{
		StudentID:   "1",
		StudentName: "Alumno Demo",
		CourseName:  "Matemática I",
		Date:        "2024-06-01",
		Reason:      "Turno médico",
		Status:      models.JustificationApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, models.JustificationPending, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.RequestDate.IsZero())
}

func TestUpdateJustificationStatusIsPermissive(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	updated, err := m.UpdateJustificationStatus(ctx, "req1", models.JustificationApproved)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.JustificationApproved, updated.Status)

	// Resolved requests may be re-resolved.
	updated, err = m.UpdateJustificationStatus(ctx, "req1", models.JustificationRejected)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.JustificationRejected, updated.Status)

	missing, err := m.UpdateJustificationStatus(ctx, "missing", models.JustificationApproved)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
