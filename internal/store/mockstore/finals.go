package mockstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/models"
)

// FinalExamsFor projects every stored session for one user.
func (m *Mock) FinalExamsFor(_ context.Context, userID string) ([]models.FinalExamSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	finals, err := m.finals()
	if err != nil {
		return nil, err
	}

	sessions := make([]models.FinalExamSession, 0, len(finals))
	for _, f := range finals {
		sessions = append(sessions, f.View(userID))
	}
	return sessions, nil
}

func (m *Mock) AddFinalExam(_ context.Context, exam models.FinalExam) (*models.FinalExam, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	finals, err := m.finals()
	if err != nil {
		return nil, err
	}

	exam.ID = uuid.NewString()
	exam.RegisteredStudentIDs = []string{}

	finals = append(finals, exam)
	if err := m.write(keyFinals, finals); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (m *Mock) DeleteFinalExam(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	finals, err := m.finals()
	if err != nil {
		return err
	}

	kept := finals[:0]
	for _, f := range finals {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	return m.write(keyFinals, kept)
}

// ToggleFinalRegistration flips the user's registration and reports the new
// state. An unknown exam reports false.
func (m *Mock) ToggleFinalRegistration(_ context.Context, userID, examID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	finals, err := m.finals()
	if err != nil {
		return false, err
	}

	for i := range finals {
		if finals[i].ID != examID {
			continue
		}

		if contains(finals[i].RegisteredStudentIDs, userID) {
			finals[i].RegisteredStudentIDs = remove(finals[i].RegisteredStudentIDs, userID)
			return false, m.write(keyFinals, finals)
		}
		finals[i].RegisteredStudentIDs = append(finals[i].RegisteredStudentIDs, userID)
		return true, m.write(keyFinals, finals)
	}
	return false, nil
}

func (m *Mock) finals() ([]models.FinalExam, error) {
	var finals []models.FinalExam
	if err := m.read(keyFinals, &finals); err != nil {
		return nil, err
	}
	return finals, nil
}
