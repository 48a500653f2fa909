package mockstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/models"
)

func (m *Mock) ListEvents(_ context.Context) ([]models.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []models.CalendarEvent
	if err := m.read(keyEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (m *Mock) AddEvent(_ context.Context, event models.CalendarEvent) (*models.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []models.CalendarEvent
	if err := m.read(keyEvents, &events); err != nil {
		return nil, err
	}

	event.ID = uuid.NewString()
	events = append(events, event)
	if err := m.write(keyEvents, events); err != nil {
		return nil, err
	}
	return &event, nil
}

func (m *Mock) DeleteEvent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []models.CalendarEvent
	if err := m.read(keyEvents, &events); err != nil {
		return err
	}

	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return m.write(keyEvents, kept)
}
