package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

type justificationStore interface {
	ListJustifications(ctx context.Context) ([]models.JustificationRequest, error)
	AddJustification(ctx context.Context, req models.JustificationRequest) (*models.JustificationRequest, error)
	UpdateJustificationStatus(ctx context.Context, id string, status models.JustificationStatus) (*models.JustificationRequest, error)
}

type justificationNotifier interface {
	Send(ctx context.Context, req SendNotificationRequest) (*models.Notification, error)
}

// SubmitJustificationRequest is a student's absence justification payload.
type SubmitJustificationRequest struct {
	StudentID   string `json:"studentId" validate:"required"`
	StudentName string `json:"studentName" validate:"required"`
	CourseName  string `json:"courseName" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
}

// JustificationService manages absence justification requests.
type JustificationService struct {
	store     justificationStore
	notifier  justificationNotifier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewJustificationService constructs a JustificationService. notifier may be
// nil when decision notices are not wanted.
func NewJustificationService(store justificationStore, notifier justificationNotifier, validate *validator.Validate, logger *zap.Logger) *JustificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JustificationService{store: store, notifier: notifier, validator: validate, logger: logger}
}

// List returns every justification request.
func (s *JustificationService) List(ctx context.Context) ([]models.JustificationRequest, error) {
	reqs, err := s.store.ListJustifications(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list justifications")
	}
	return reqs, nil
}

// Submit records a new request in PENDING state.
func (s *JustificationService) Submit(ctx context.Context, req SubmitJustificationRequest) (*models.JustificationRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid justification payload")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "absence date must be YYYY-MM-DD")
	}

	created, err := s.store.AddJustification(ctx, models.JustificationRequest{
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		CourseName:  req.CourseName,
		Date:        req.Date,
		Reason:      req.Reason,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to submit justification")
	}
	return created, nil
}

// Decide resolves a request and notifies the student of the outcome.
func (s *JustificationService) Decide(ctx context.Context, id string, status models.JustificationStatus) (*models.JustificationRequest, error) {
	if status != models.JustificationApproved && status != models.JustificationRejected {
		return nil, appErrors.Clone(appErrors.ErrValidation, "decision must be APPROVED or REJECTED")
	}

	updated, err := s.store.UpdateJustificationStatus(ctx, id, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update justification")
	}
	if updated == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "justification request not found")
	}

	if s.notifier != nil {
		notice := SendNotificationRequest{
			UserID: updated.StudentID,
			Title:  "Justificación de inasistencia",
			Type:   models.NotificationSuccess,
		}
		if status == models.JustificationApproved {
			notice.Message = fmt.Sprintf("Tu justificación del %s para %s fue aprobada.", updated.Date, updated.CourseName)
		} else {
			notice.Type = models.NotificationAlert
			notice.Message = fmt.Sprintf("Tu justificación del %s para %s fue rechazada.", updated.Date, updated.CourseName)
		}
		if _, err := s.notifier.Send(ctx, notice); err != nil {
			s.logger.Warn("justification decision notice failed", zap.String("request_id", id), zap.Error(err))
		}
	}
	return updated, nil
}
