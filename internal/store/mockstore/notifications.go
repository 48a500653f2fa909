package mockstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/models"
)

// NotificationsFor returns the user's notifications plus every broadcast,
// newest first.
func (m *Mock) NotificationsFor(_ context.Context, userID string) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.notifications()
	if err != nil {
		return nil, err
	}

	var visible []models.Notification
	for _, n := range all {
		if n.UserID == userID || n.UserID == models.NotificationAudienceAll {
			visible = append(visible, n)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Date.After(visible[j].Date)
	})
	return visible, nil
}

func (m *Mock) UnreadNotificationCount(ctx context.Context, userID string) (int, error) {
	visible, err := m.NotificationsFor(ctx, userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range visible {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *Mock) AddNotification(_ context.Context, n models.Notification) (*models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.notifications()
	if err != nil {
		return nil, err
	}

	n.ID = uuid.NewString()
	n.Date = time.Now().UTC()
	n.Read = false

	all = append(all, n)
	if err := m.write(keyNotifications, all); err != nil {
		return nil, err
	}
	return &n, nil
}

func (m *Mock) MarkNotificationRead(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.notifications()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == id {
			all[i].Read = true
		}
	}
	return m.write(keyNotifications, all)
}

func (m *Mock) MarkAllNotificationsRead(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.notifications()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].UserID == userID || all[i].UserID == models.NotificationAudienceAll {
			all[i].Read = true
		}
	}
	return m.write(keyNotifications, all)
}

func (m *Mock) DeleteNotification(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.notifications()
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, n := range all {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	return m.write(keyNotifications, kept)
}

func (m *Mock) notifications() ([]models.Notification, error) {
	var all []models.Notification
	if err := m.read(keyNotifications, &all); err != nil {
		return nil, err
	}
	return all, nil
}
