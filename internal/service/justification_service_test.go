package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

type capturingNotifier struct {
	sent []SendNotificationRequest
	err  error
}

func (n *capturingNotifier) Send(_ context.Context, req SendNotificationRequest) (*models.Notification, error) {
	if n.err != nil {
		return nil, n.err
	}
	n.sent = append(n.sent, req)
	return &models.Notification{ID: "n1"}, nil
}

func TestSubmitValidatesDate(t *testing.T) {
	svc := NewJustificationService(newStore(t), nil, nil, nil)

	_, err := svc.Submit(context.Background(), SubmitJustificationRequest{
		StudentID:   "1",
		StudentName: "Alumno Demo",
		CourseName:  "Matemática I",
		Date:        "10/05/2024",
		Reason:      "Turno médico",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestDecideApprovedNotifiesStudent(t *testing.T) {
	notifier := &capturingNotifier{}
	svc := NewJustificationService(newStore(t), notifier, nil, nil)

	updated, err := svc.Decide(context.Background(), "req1", models.JustificationApproved)
	require.NoError(t, err)
	assert.Equal(t, models.JustificationApproved, updated.Status)

	require.Len(t, notifier.sent, 1)
	notice := notifier.sent[0]
	assert.Equal(t, "2", notice.UserID)
	assert.Equal(t, "Justificación de inasistencia", notice.Title)
	assert.Equal(t, models.NotificationSuccess, notice.Type)
	assert.Equal(t, "Tu justificación del 2024-05-10 para Programación I fue aprobada.", notice.Message)
}

func TestDecideRejectedSendsAlert(t *testing.T) {
	notifier := &capturingNotifier{}
	svc := NewJustificationService(newStore(t), notifier, nil, nil)

	_, err := svc.Decide(context.Background(), "req1", models.JustificationRejected)
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, models.NotificationAlert, notifier.sent[0].Type)
	assert.Equal(t, "Tu justificación del 2024-05-10 para Programación I fue rechazada.", notifier.sent[0].Message)
}

func TestDecideRejectsPendingStatus(t *testing.T) {
	svc := NewJustificationService(newStore(t), nil, nil, nil)

	_, err := svc.Decide(context.Background(), "req1", models.JustificationPending)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestDecideUnknownRequest(t *testing.T) {
	svc := NewJustificationService(newStore(t), nil, nil, nil)

	_, err := svc.Decide(context.Background(), "missing", models.JustificationApproved)
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestDecideSurvivesNotifierFailure(t *testing.T) {
	notifier := &capturingNotifier{err: assert.AnError}
	svc := NewJustificationService(newStore(t), notifier, nil, nil)

	updated, err := svc.Decide(context.Background(), "req1", models.JustificationApproved)
	require.NoError(t, err)
	assert.Equal(t, models.JustificationApproved, updated.Status)
}
