package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/isfdyt26/portal-api/internal/models"
)

type finalExamRow struct {
	ID          string         `db:"id"`
	CareerID    sql.NullString `db:"career_id"`
	SubjectID   sql.NullString `db:"subject_id"`
	SubjectName string         `db:"subject_name"`
	Date        string         `db:"date"`
	Time        string         `db:"time"`
	Professor   string         `db:"professor"`
	Classroom   string         `db:"classroom"`
	Registered  pq.StringArray `db:"registered_student_ids"`
}

func (r finalExamRow) toModel() models.FinalExam {
	return models.FinalExam{
		ID:                   r.ID,
		CareerID:             r.CareerID.String,
		SubjectID:            r.SubjectID.String,
		SubjectName:          r.SubjectName,
		Date:                 r.Date,
		Time:                 r.Time,
		Professor:            r.Professor,
		Classroom:            r.Classroom,
		RegisteredStudentIDs: []string(r.Registered),
	}
}

const finalExamColumns = `id, career_id, subject_id, subject_name, date, time, professor, classroom, registered_student_ids`

func (p *PG) FinalExamsFor(ctx context.Context, userID string) ([]models.FinalExamSession, error) {
	query := fmt.Sprintf(`SELECT %s FROM final_exams ORDER BY date`, finalExamColumns)

	var rows []finalExamRow
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list final exams: %w", err)
	}

	sessions := make([]models.FinalExamSession, 0, len(rows))
	for _, r := range rows {
		sessions = append(sessions, r.toModel().View(userID))
	}
	return sessions, nil
}

func (p *PG) AddFinalExam(ctx context.Context, exam models.FinalExam) (*models.FinalExam, error) {
	exam.ID = uuid.NewString()
	exam.RegisteredStudentIDs = []string{}

	const query = `
		INSERT INTO final_exams (id, career_id, subject_id, subject_name, date, time, professor, classroom, registered_student_ids)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`
	if _, err := p.db.ExecContext(ctx, query,
		exam.ID, exam.CareerID, exam.SubjectID, exam.SubjectName, exam.Date, exam.Time, exam.Professor, exam.Classroom,
		pq.Array(exam.RegisteredStudentIDs),
	); err != nil {
		return nil, fmt.Errorf("insert final exam: %w", err)
	}
	return &exam, nil
}

func (p *PG) DeleteFinalExam(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM final_exams WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete final exam: %w", err)
	}
	return nil
}

// ToggleFinalRegistration reads the registration array, flips the user's
// membership and writes it back.
func (p *PG) ToggleFinalRegistration(ctx context.Context, userID, examID string) (bool, error) {
	var registered pq.StringArray
	if err := p.db.GetContext(ctx, &registered, `SELECT registered_student_ids FROM final_exams WHERE id = $1`, examID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("fetch final exam registration: %w", err)
	}

	ids := []string(registered)
	nowRegistered := !containsID(ids, userID)
	if nowRegistered {
		ids = append(ids, userID)
	} else {
		ids = removeID(ids, userID)
	}

	const update = `UPDATE final_exams SET registered_student_ids = $1 WHERE id = $2`
	if _, err := p.db.ExecContext(ctx, update, pq.Array(ids), examID); err != nil {
		return false, fmt.Errorf("update final exam registration: %w", err)
	}
	return nowRegistered, nil
}
