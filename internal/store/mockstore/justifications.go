package mockstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/models"
)

func (m *Mock) ListJustifications(_ context.Context) ([]models.JustificationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var reqs []models.JustificationRequest
	if err := m.read(keyJustifications, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// AddJustification stores a new request in PENDING state regardless of what
// the caller supplied.
func (m *Mock) AddJustification(_ context.Context, req models.JustificationRequest) (*models.JustificationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var reqs []models.JustificationRequest
	if err := m.read(keyJustifications, &reqs); err != nil {
		return nil, err
	}

	req.ID = uuid.NewString()
	req.Status = models.JustificationPending
	req.RequestDate = time.Now().UTC()

	reqs = append(reqs, req)
	if err := m.write(keyJustifications, reqs); err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateJustificationStatus overwrites the status without inspecting the
// current one. Re-resolving a resolved request is allowed.
func (m *Mock) UpdateJustificationStatus(_ context.Context, id string, status models.JustificationStatus) (*models.JustificationRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var reqs []models.JustificationRequest
	if err := m.read(keyJustifications, &reqs); err != nil {
		return nil, err
	}

	for i := range reqs {
		if reqs[i].ID == id {
			reqs[i].Status = status
			if err := m.write(keyJustifications, reqs); err != nil {
				return nil, err
			}
			return &reqs[i], nil
		}
	}
	return nil, nil
}
