package pgstore

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
)

func TestListCareersDecodesSubjects(t *testing.T) {
	p, mock, cleanup := newMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "years", "subjects"}).
		AddRow("c8", "Tecnicatura Superior en Desarrollo de Software", `{"1° Año","2° Año"}`, []byte(`[{"id":"s1","name":"Programación I","year":"1° Año"}]`)).
		AddRow("c1", "Profesorado de Educación Primaria", "{}", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, years, subjects FROM careers ORDER BY name")).
		WillReturnRows(rows)

	careers, err := p.ListCareers(context.Background())
	require.NoError(t, err)
	require.Len(t, careers, 2)
	require.Len(t, careers[0].Subjects, 1)
	assert.Equal(t, "Programación I", careers[0].Subjects[0].Name)
	assert.NotNil(t, careers[1].Subjects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCareerUpserts(t *testing.T) {
	p, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec(`(?s)INSERT INTO careers.*ON CONFLICT \(id\) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := p.SaveCareer(context.Background(), models.Career{
		ID:    "c8",
		Name:  "Tecnicatura Superior en Desarrollo de Software",
		Years: []string{"1° Año", "2° Año", "3° Año"},
	})
	require.NoError(t, err)
	assert.Equal(t, "c8", saved.ID)
	assert.NotNil(t, saved.Subjects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCareerAssignsID(t *testing.T) {
	p, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO careers").WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := p.SaveCareer(context.Background(), models.Career{Name: "Nueva", Years: []string{"1° Año"}})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveClassroomUpserts(t *testing.T) {
	p, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec(`(?s)INSERT INTO classrooms.*ON CONFLICT \(id\) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, err := p.SaveClassroom(context.Background(), models.Classroom{ID: "a1", Name: "Aula 204", Capacity: 35, Location: "Planta Alta"})
	require.NoError(t, err)
	assert.Equal(t, "a1", saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
