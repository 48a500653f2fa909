package mockstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
)

func TestNotificationsForIncludesBroadcasts(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	visible, err := m.NotificationsFor(ctx, "1")
	require.NoError(t, err)
	require.Len(t, visible, 2)
	for _, n := range visible {
		assert.Contains(t, []string{"1", models.NotificationAudienceAll}, n.UserID)
	}

	// Newest first.
	added, err := m.AddNotification(ctx, models.Notification{
		UserID:  "1",
		Title:   "Nueva nota",
		Message: "Se cargó una calificación.",
		Type:    models.NotificationSuccess,
	})
	require.NoError(t, err)
	assert.False(t, added.Read)

	visible, err = m.NotificationsFor(ctx, "1")
	require.NoError(t, err)
	require.Len(t, visible, 3)
	assert.Equal(t, added.ID, visible[0].ID)
}

func TestUnreadNotificationCount(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	count, err := m.UnreadNotificationCount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Notification 3 is seeded read, so the teacher only counts the broadcast.
	count, err = m.UnreadNotificationCount(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, m.MarkAllNotificationsRead(ctx, "1"))
	count, err = m.UnreadNotificationCount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMarkAndDeleteNotification(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	require.NoError(t, m.MarkNotificationRead(ctx, "1"))
	visible, err := m.NotificationsFor(ctx, "1")
	require.NoError(t, err)
	for _, n := range visible {
		if n.ID == "1" {
			assert.True(t, n.Read)
		}
	}

	require.NoError(t, m.DeleteNotification(ctx, "1"))
	visible, err = m.NotificationsFor(ctx, "1")
	require.NoError(t, err)
	for _, n := range visible {
		assert.NotEqual(t, "1", n.ID)
	}
}
