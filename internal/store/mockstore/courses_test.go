package mockstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	"github.com/isfdyt26/portal-api/pkg/config"
)

func TestCourseStudentsDeterministic(t *testing.T) {
	catalog := NewCourseCatalog()

	first := catalog.CourseStudents("soft1-prog1")
	second := catalog.CourseStudents("soft1-prog1")
	assert.Equal(t, first, second)
	assert.Len(t, first, 12)
	assert.Len(t, catalog.CourseStudents("soft2-bd"), 8)
	assert.Len(t, catalog.CourseStudents("anything-else"), 6)
}

func TestToggleCourseStatusSharedCatalog(t *testing.T) {
	catalog := NewCourseCatalog()
	m := New(config.MockConfig{}, catalog, zap.NewNop())
	require.NoError(t, m.Initialize(context.Background()))

	courses, err := m.ToggleCourseStatus(context.Background(), "soft1-prog1")
	require.NoError(t, err)
	for _, c := range courses {
		if c.ID == "soft1-prog1" {
			assert.Equal(t, models.CourseArchived, c.Status)
		}
	}

	// The mutation is visible through the shared catalog instance.
	for _, c := range catalog.TeacherCourses("2") {
		if c.ID == "soft1-prog1" {
			assert.Equal(t, models.CourseArchived, c.Status)
		}
	}
}

func TestStudentCoursesStandings(t *testing.T) {
	m := newMock(t)

	courses, err := m.StudentCourses(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, courses, 4)

	byName := make(map[string]models.AcademicStanding, len(courses))
	for _, c := range courses {
		byName[c.Name] = c.AcademicStatus
	}
	assert.Equal(t, models.StandingApproved, byName["Programación I"])
	assert.Equal(t, models.StandingInProgress, byName["Sistemas Operativos"])
	assert.Equal(t, models.StandingApproved, byName["Inglés Técnico I"])
}
