package pgstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/models"
)

func (p *PG) ListEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	const query = `SELECT id, title, date, type, COALESCE(description, '') AS description FROM calendar_events ORDER BY date`

	var events []models.CalendarEvent
	if err := p.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (p *PG) AddEvent(ctx context.Context, event models.CalendarEvent) (*models.CalendarEvent, error) {
	event.ID = uuid.NewString()

	const query = `INSERT INTO calendar_events (id, title, date, type, description) VALUES ($1, $2, $3, $4, $5)`
	if _, err := p.db.ExecContext(ctx, query, event.ID, event.Title, event.Date, string(event.Type), event.Description); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return &event, nil
}

func (p *PG) DeleteEvent(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
