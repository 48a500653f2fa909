package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/models"
)

const justificationColumns = `id, student_id, student_name, course_name, date, reason, status, request_date`

func (p *PG) ListJustifications(ctx context.Context) ([]models.JustificationRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM justification_requests ORDER BY request_date DESC`, justificationColumns)

	var reqs []models.JustificationRequest
	if err := p.db.SelectContext(ctx, &reqs, query); err != nil {
		return nil, fmt.Errorf("list justifications: %w", err)
	}
	return reqs, nil
}

func (p *PG) AddJustification(ctx context.Context, req models.JustificationRequest) (*models.JustificationRequest, error) {
	req.ID = uuid.NewString()
	req.Status = models.JustificationPending
	req.RequestDate = time.Now().UTC()

	const query = `
		INSERT INTO justification_requests (id, student_id, student_name, course_name, date, reason, status, request_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := p.db.ExecContext(ctx, query,
		req.ID, req.StudentID, req.StudentName, req.CourseName, req.Date, req.Reason, string(req.Status), req.RequestDate,
	); err != nil {
		return nil, fmt.Errorf("insert justification: %w", err)
	}
	return &req, nil
}

func (p *PG) UpdateJustificationStatus(ctx context.Context, id string, status models.JustificationStatus) (*models.JustificationRequest, error) {
	const update = `UPDATE justification_requests SET status = $1 WHERE id = $2`
	if _, err := p.db.ExecContext(ctx, update, string(status), id); err != nil {
		return nil, fmt.Errorf("update justification status: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM justification_requests WHERE id = $1`, justificationColumns)
	var req models.JustificationRequest
	if err := p.db.GetContext(ctx, &req, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch justification: %w", err)
	}
	return &req, nil
}
