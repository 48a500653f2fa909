package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

type finalStore interface {
	FinalExamsFor(ctx context.Context, userID string) ([]models.FinalExamSession, error)
	AddFinalExam(ctx context.Context, exam models.FinalExam) (*models.FinalExam, error)
	DeleteFinalExam(ctx context.Context, id string) error
	ToggleFinalRegistration(ctx context.Context, userID, examID string) (bool, error)
	StudentCourses(ctx context.Context, studentID string) ([]models.StudentCourse, error)
}

// CreateFinalExamRequest is the payload for scheduling a final exam session.
type CreateFinalExamRequest struct {
	SubjectName string `json:"subjectName" validate:"required"`
	CareerID    string `json:"careerId"`
	SubjectID   string `json:"subjectId"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Professor   string `json:"professor" validate:"required"`
	Classroom   string `json:"classroom" validate:"required"`
}

// FinalService manages final exam sessions and registration.
type FinalService struct {
	store     finalStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFinalService constructs a FinalService.
func NewFinalService(store finalStore, validate *validator.Validate, logger *zap.Logger) *FinalService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinalService{store: store, validator: validate, logger: logger}
}

// ListFor returns every session projected for one user.
func (s *FinalService) ListFor(ctx context.Context, userID string) ([]models.FinalExamSession, error) {
	sessions, err := s.store.FinalExamsFor(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list final exams")
	}
	return sessions, nil
}

// Create schedules a new session with an empty registration list.
func (s *FinalService) Create(ctx context.Context, req CreateFinalExamRequest) (*models.FinalExam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid final exam payload")
	}

	exam, err := s.store.AddFinalExam(ctx, models.FinalExam{
		SubjectName: req.SubjectName,
		CareerID:    req.CareerID,
		SubjectID:   req.SubjectID,
		Date:        req.Date,
		Time:        req.Time,
		Professor:   req.Professor,
		Classroom:   req.Classroom,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create final exam")
	}
	return exam, nil
}

// Delete removes a session.
func (s *FinalService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteFinalExam(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete final exam")
	}
	return nil
}

// ToggleRegistration flips the student's registration. Registering requires
// an approved standing in the matching course; unregistering is always
// allowed. Refusal reasons match the portal's wording.
func (s *FinalService) ToggleRegistration(ctx context.Context, userID, examID string) (bool, error) {
	sessions, err := s.store.FinalExamsFor(ctx, userID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load final exams")
	}

	var session *models.FinalExamSession
	for i := range sessions {
		if sessions[i].ID == examID {
			session = &sessions[i]
			break
		}
	}
	if session == nil {
		return false, appErrors.Clone(appErrors.ErrNotFound, "final exam not found")
	}

	if !session.IsRegistered {
		if err := s.checkEligibility(ctx, userID, session.SubjectName); err != nil {
			return false, err
		}
	}

	registered, err := s.store.ToggleFinalRegistration(ctx, userID, examID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to toggle registration")
	}
	return registered, nil
}

func (s *FinalService) checkEligibility(ctx context.Context, userID, subjectName string) error {
	courses, err := s.store.StudentCourses(ctx, userID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student courses")
	}

	for _, course := range courses {
		if !strings.EqualFold(course.Name, subjectName) {
			continue
		}
		switch course.AcademicStatus {
		case models.StandingApproved:
			return nil
		case models.StandingPromoted:
			return appErrors.Clone(appErrors.ErrNotEligible, "Ya promocionaste")
		default:
			return appErrors.Clone(appErrors.ErrNotEligible, "Cursada no aprobada")
		}
	}
	return appErrors.Clone(appErrors.ErrNotEligible, "No cursas esta materia")
}
