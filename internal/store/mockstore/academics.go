package mockstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/models"
)

func (m *Mock) ListCareers(_ context.Context) ([]models.Career, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var careers []models.Career
	if err := m.read(keyCareers, &careers); err != nil {
		return nil, err
	}
	return careers, nil
}

// SaveCareer replaces the career with a matching ID or appends a new one.
// An empty ID means the career is new.
func (m *Mock) SaveCareer(_ context.Context, career models.Career) (*models.Career, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var careers []models.Career
	if err := m.read(keyCareers, &careers); err != nil {
		return nil, err
	}

	if career.ID == "" {
		career.ID = uuid.NewString()
	}
	if career.Subjects == nil {
		career.Subjects = []models.Subject{}
	}

	replaced := false
	for i := range careers {
		if careers[i].ID == career.ID {
			careers[i] = career
			replaced = true
			break
		}
	}
	if !replaced {
		careers = append(careers, career)
	}

	if err := m.write(keyCareers, careers); err != nil {
		return nil, err
	}
	return &career, nil
}

func (m *Mock) DeleteCareer(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var careers []models.Career
	if err := m.read(keyCareers, &careers); err != nil {
		return err
	}

	kept := careers[:0]
	for _, c := range careers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return m.write(keyCareers, kept)
}

func (m *Mock) ListClassrooms(_ context.Context) ([]models.Classroom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var rooms []models.Classroom
	if err := m.read(keyClassrooms, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (m *Mock) SaveClassroom(_ context.Context, room models.Classroom) (*models.Classroom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var rooms []models.Classroom
	if err := m.read(keyClassrooms, &rooms); err != nil {
		return nil, err
	}

	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	replaced := false
	for i := range rooms {
		if rooms[i].ID == room.ID {
			rooms[i] = room
			replaced = true
			break
		}
	}
	if !replaced {
		rooms = append(rooms, room)
	}

	if err := m.write(keyClassrooms, rooms); err != nil {
		return nil, err
	}
	return &room, nil
}

func (m *Mock) DeleteClassroom(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var rooms []models.Classroom
	if err := m.read(keyClassrooms, &rooms); err != nil {
		return err
	}

	kept := rooms[:0]
	for _, r := range rooms {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return m.write(keyClassrooms, kept)
}
