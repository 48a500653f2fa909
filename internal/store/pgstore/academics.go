package pgstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/isfdyt26/portal-api/internal/models"
)

type careerRow struct {
	ID       string          `db:"id"`
	Name     string          `db:"name"`
	Years    pq.StringArray  `db:"years"`
	Subjects json.RawMessage `db:"subjects"`
}

func (r careerRow) toModel() (models.Career, error) {
	c := models.Career{
		ID:       r.ID,
		Name:     r.Name,
		Years:    []string(r.Years),
		Subjects: []models.Subject{},
	}
	if len(r.Subjects) > 0 {
		if err := json.Unmarshal(r.Subjects, &c.Subjects); err != nil {
			return c, fmt.Errorf("decode subjects for career %s: %w", r.ID, err)
		}
	}
	return c, nil
}

func (p *PG) ListCareers(ctx context.Context) ([]models.Career, error) {
	const query = `SELECT id, name, years, subjects FROM careers ORDER BY name`

	var rows []careerRow
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}

	careers := make([]models.Career, 0, len(rows))
	for _, r := range rows {
		c, err := r.toModel()
		if err != nil {
			return nil, err
		}
		careers = append(careers, c)
	}
	return careers, nil
}

// SaveCareer upserts on the primary key, matching the save-or-replace
// contract of the local backend.
func (p *PG) SaveCareer(ctx context.Context, career models.Career) (*models.Career, error) {
	if career.ID == "" {
		career.ID = uuid.NewString()
	}
	if career.Subjects == nil {
		career.Subjects = []models.Subject{}
	}

	subjects, err := json.Marshal(career.Subjects)
	if err != nil {
		return nil, fmt.Errorf("encode subjects: %w", err)
	}

	const query = `
		INSERT INTO careers (id, name, years, subjects, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, years = EXCLUDED.years, subjects = EXCLUDED.subjects, updated_at = NOW()`
	if _, err := p.db.ExecContext(ctx, query, career.ID, career.Name, pq.Array(career.Years), subjects); err != nil {
		return nil, fmt.Errorf("save career: %w", err)
	}
	return &career, nil
}

func (p *PG) DeleteCareer(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM careers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete career: %w", err)
	}
	return nil
}

func (p *PG) ListClassrooms(ctx context.Context) ([]models.Classroom, error) {
	const query = `SELECT id, name, capacity, location FROM classrooms ORDER BY name`

	var rooms []models.Classroom
	if err := p.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return rooms, nil
}

func (p *PG) SaveClassroom(ctx context.Context, room models.Classroom) (*models.Classroom, error) {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	const query = `
		INSERT INTO classrooms (id, name, capacity, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, capacity = EXCLUDED.capacity, location = EXCLUDED.location, updated_at = NOW()`
	if _, err := p.db.ExecContext(ctx, query, room.ID, room.Name, room.Capacity, room.Location); err != nil {
		return nil, fmt.Errorf("save classroom: %w", err)
	}
	return &room, nil
}

func (p *PG) DeleteClassroom(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM classrooms WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete classroom: %w", err)
	}
	return nil
}
