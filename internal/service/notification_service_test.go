package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

func TestSendBroadcastReachesEveryone(t *testing.T) {
	store := newStore(t)
	svc := NewNotificationService(store, nil, 0, nil, nil)
	ctx := context.Background()

	created, err := svc.Send(ctx, SendNotificationRequest{
		UserID:  models.NotificationAudienceAll,
		Title:   "Acto académico",
		Message: "Suspensión de clases el viernes.",
		Type:    models.NotificationInfo,
	})
	require.NoError(t, err)
	assert.False(t, created.Read)

	for _, userID := range []string{"1", "2", "5"} {
		visible, err := svc.ListFor(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, visible[0].ID)
	}
}

func TestSendValidatesType(t *testing.T) {
	svc := NewNotificationService(newStore(t), nil, 0, nil, nil)

	_, err := svc.Send(context.Background(), SendNotificationRequest{
		UserID:  "1",
		Title:   "Aviso",
		Message: "Texto",
		Type:    "warning",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestUnreadCountWithoutCache(t *testing.T) {
	store := newStore(t)
	svc := NewNotificationService(store, nil, 0, nil, nil)
	ctx := context.Background()

	count, err := svc.UnreadCount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkAllRead(ctx, "1"))
	count, err = svc.UnreadCount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
