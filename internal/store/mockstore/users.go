package mockstore

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/credentials"
	"github.com/isfdyt26/portal-api/internal/models"
)

func (m *Mock) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	if err := m.read(keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *Mock) GetUser(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	if err := m.read(keyUsers, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (m *Mock) AddUser(_ context.Context, user models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	if err := m.read(keyUsers, &users); err != nil {
		return nil, err
	}

	user.ID = uuid.NewString()
	if user.Preferences == nil {
		user.Preferences = models.DefaultPreferences()
	}
	if user.Avatar == "" {
		user.Avatar = models.AvatarForName(user.Name)
	}

	users = append(users, user)
	if err := m.write(keyUsers, users); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mock) UpdateUser(_ context.Context, id string, updates models.UserUpdate) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	if err := m.read(keyUsers, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}
		applyUserUpdate(&users[i], updates)
		if err := m.write(keyUsers, users); err != nil {
			return nil, err
		}
		return &users[i], nil
	}
	return nil, nil
}

func applyUserUpdate(u *models.User, updates models.UserUpdate) {
	if updates.Name != nil {
		u.Name = *updates.Name
	}
	if updates.Email != nil {
		u.Email = *updates.Email
	}
	if updates.Password != nil {
		u.Password = *updates.Password
	}
	if updates.Role != nil {
		u.Role = *updates.Role
	}
	if updates.Avatar != nil {
		u.Avatar = *updates.Avatar
	}
	if updates.Preferences != nil {
		u.Preferences = updates.Preferences
	}
	if updates.AcademicData != nil {
		u.AcademicData = updates.AcademicData
	}
}

func (m *Mock) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	if err := m.read(keyUsers, &users); err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return m.write(keyUsers, kept)
}

// Authenticate matches email case-insensitively and the credential via the
// shared comparison, so the seeded demo accounts keep working next to
// hashed ones.
func (m *Mock) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	if err := m.read(keyUsers, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) && credentials.Matches(users[i].Password, password) {
			return &users[i], nil
		}
	}
	return nil, nil
}
