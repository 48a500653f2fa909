package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
)

func TestAnnounceMaterialBroadcasts(t *testing.T) {
	notifier := &capturingNotifier{}
	svc := NewCourseService(newStore(t), notifier, nil, nil)

	err := svc.AnnounceMaterial(context.Background(), AnnounceMaterialRequest{
		CourseName: "Programación I",
		Title:      "Guía de Punteros",
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	notice := notifier.sent[0]
	assert.Equal(t, models.NotificationAudienceAll, notice.UserID)
	assert.Equal(t, "Nuevo material disponible", notice.Title)
	assert.Equal(t, `Se publicó "Guía de Punteros" en Programación I.`, notice.Message)
}

func TestToggleStatusThroughService(t *testing.T) {
	svc := NewCourseService(newStore(t), nil, nil, nil)

	courses, err := svc.ToggleStatus(context.Background(), "archived-1")
	require.NoError(t, err)
	for _, c := range courses {
		if c.ID == "archived-1" {
			assert.Equal(t, models.CourseActive, c.Status)
		}
	}
}
