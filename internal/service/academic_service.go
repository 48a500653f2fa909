package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

type academicStore interface {
	ListCareers(ctx context.Context) ([]models.Career, error)
	SaveCareer(ctx context.Context, career models.Career) (*models.Career, error)
	DeleteCareer(ctx context.Context, id string) error
	ListClassrooms(ctx context.Context) ([]models.Classroom, error)
	SaveClassroom(ctx context.Context, room models.Classroom) (*models.Classroom, error)
	DeleteClassroom(ctx context.Context, id string) error
}

// SaveCareerRequest carries a career upsert. When PreserveSubjects is set and
// the request omits subjects, the stored subject list survives the edit.
type SaveCareerRequest struct {
	ID               string           `json:"id"`
	Name             string           `json:"name" validate:"required"`
	Years            []string         `json:"years" validate:"required,min=1,dive,required"`
	Subjects         []models.Subject `json:"subjects"`
	PreserveSubjects bool             `json:"preserveSubjects"`
}

// SaveClassroomRequest carries a classroom upsert.
type SaveClassroomRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	Location string `json:"location" validate:"required"`
}

// AcademicService manages careers, subjects and classrooms.
type AcademicService struct {
	store     academicStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAcademicService constructs an AcademicService.
func NewAcademicService(store academicStore, validate *validator.Validate, logger *zap.Logger) *AcademicService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AcademicService{store: store, validator: validate, logger: logger}
}

// ListCareers returns every career with its subjects.
func (s *AcademicService) ListCareers(ctx context.Context) ([]models.Career, error) {
	careers, err := s.store.ListCareers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list careers")
	}
	return careers, nil
}

// SaveCareer validates and upserts a career. Every subject must reference one
// of the career's own year labels.
func (s *AcademicService) SaveCareer(ctx context.Context, req SaveCareerRequest) (*models.Career, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid career payload")
	}

	career := models.Career{
		ID:       req.ID,
		Name:     strings.TrimSpace(req.Name),
		Years:    req.Years,
		Subjects: req.Subjects,
	}

	if req.PreserveSubjects && len(req.Subjects) == 0 && req.ID != "" {
		existing, err := s.findCareer(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			career.Subjects = existing.Subjects
		}
	}

	for _, subject := range career.Subjects {
		if !career.HasYear(subject.Year) {
			return nil, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("subject %q references year %q outside the career plan", subject.Name, subject.Year))
		}
	}

	saved, err := s.store.SaveCareer(ctx, career)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save career")
	}
	return saved, nil
}

// DeleteCareer removes a career.
func (s *AcademicService) DeleteCareer(ctx context.Context, id string) error {
	if err := s.store.DeleteCareer(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete career")
	}
	return nil
}

// ListClassrooms returns every classroom.
func (s *AcademicService) ListClassrooms(ctx context.Context) ([]models.Classroom, error) {
	rooms, err := s.store.ListClassrooms(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classrooms")
	}
	return rooms, nil
}

// SaveClassroom validates and upserts a classroom.
func (s *AcademicService) SaveClassroom(ctx context.Context, req SaveClassroomRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid classroom payload")
	}

	room := models.Classroom{
		ID:       req.ID,
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
		Location: strings.TrimSpace(req.Location),
	}

	saved, err := s.store.SaveClassroom(ctx, room)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save classroom")
	}
	return saved, nil
}

// DeleteClassroom removes a classroom.
func (s *AcademicService) DeleteClassroom(ctx context.Context, id string) error {
	if err := s.store.DeleteClassroom(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete classroom")
	}
	return nil
}

func (s *AcademicService) findCareer(ctx context.Context, id string) (*models.Career, error) {
	careers, err := s.store.ListCareers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load careers")
	}
	for i := range careers {
		if careers[i].ID == id {
			return &careers[i], nil
		}
	}
	return nil, nil
}
