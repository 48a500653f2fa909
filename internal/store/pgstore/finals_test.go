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

func TestFinalExamsForProjectsView(t *testing.T) {
	p, mock, cleanup := newMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "career_id", "subject_id", "subject_name", "date", "time", "professor", "classroom", "registered_student_ids"}).
		AddRow("f1", nil, "s1", "Programación I", "2024-07-10", "18:00", "Prof. A. Gomez", "Lab. Informática", "{1,9}").
		AddRow("f2", nil, "s2", "Sistemas Operativos", "2024-07-12", "19:00", "Prof. M. Sanchez", "Aula 204", "{}")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, career_id, subject_id, subject_name, date, time, professor, classroom, registered_student_ids FROM final_exams ORDER BY date")).
		WillReturnRows(rows)

	sessions, err := p.FinalExamsFor(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].IsRegistered)
	assert.Equal(t, 2, sessions[0].RegisteredCount)
	assert.False(t, sessions[1].IsRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFinalRegistrationFlips(t *testing.T) {
	p, mock, cleanup := newMock(t)
	defer cleanup()

	fetch := regexp.QuoteMeta("SELECT registered_student_ids FROM final_exams WHERE id = $1")
	update := regexp.QuoteMeta("UPDATE final_exams SET registered_student_ids = $1 WHERE id = $2")

	mock.ExpectQuery(fetch).WithArgs("f1").
		WillReturnRows(sqlmock.NewRows([]string{"registered_student_ids"}).AddRow("{}"))
	mock.ExpectExec(update).WillReturnResult(sqlmock.NewResult(0, 1))

	registered, err := p.ToggleFinalRegistration(context.Background(), "1", "f1")
	require.NoError(t, err)
	assert.True(t, registered)

	mock.ExpectQuery(fetch).WithArgs("f1").
		WillReturnRows(sqlmock.NewRows([]string{"registered_student_ids"}).AddRow("{1}"))
	mock.ExpectExec(update).WillReturnResult(sqlmock.NewResult(0, 1))

	registered, err = p.ToggleFinalRegistration(context.Background(), "1", "f1")
	require.NoError(t, err)
	assert.False(t, registered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFinalRegistrationUnknownExam(t *testing.T) {
	p, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT registered_student_ids FROM final_exams WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"registered_student_ids"}))

	registered, err := p.ToggleFinalRegistration(context.Background(), "1", "missing")
	require.NoError(t, err)
	assert.False(t, registered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFinalExamResetsRegistration(t *testing.T) {
	p, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO final_exams").WillReturnResult(sqlmock.NewResult(1, 1))

	exam, err := p.AddFinalExam(context.Background(), models.FinalExam{
		SubjectName:          "Base de Datos",
		Date:                 "2024-07-20",
		Time:                 "18:00",
		Professor:            "Prof. Maria Sanchez",
		Classroom:            "Lab. Informática",
		RegisteredStudentIDs: []string{"1"},
	})
	require.NoError(t, err)
	assert.Empty(t, exam.RegisteredStudentIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
