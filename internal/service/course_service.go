package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

type courseStore interface {
	StudentCourses(ctx context.Context, studentID string) ([]models.StudentCourse, error)
	TeacherCourses(ctx context.Context, teacherID string) ([]models.TeacherCourse, error)
	CourseStudents(ctx context.Context, courseID string) ([]models.CourseStudent, error)
	ToggleCourseStatus(ctx context.Context, courseID string) ([]models.TeacherCourse, error)
}

type courseNotifier interface {
	Send(ctx context.Context, req SendNotificationRequest) (*models.Notification, error)
}

// AnnounceMaterialRequest reports a new course material so enrolled students
// get notified.
type AnnounceMaterialRequest struct {
	CourseName string `json:"courseName" validate:"required"`
	Title      string `json:"title" validate:"required"`
}

// CourseService serves the course dashboards.
type CourseService struct {
	store     courseStore
	notifier  courseNotifier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService. notifier may be nil.
func NewCourseService(store courseStore, notifier courseNotifier, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{store: store, notifier: notifier, validator: validate, logger: logger}
}

// StudentCourses returns one student's enrollment view.
func (s *CourseService) StudentCourses(ctx context.Context, studentID string) ([]models.StudentCourse, error) {
	courses, err := s.store.StudentCourses(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list student courses")
	}
	return courses, nil
}

// TeacherCourses returns one teacher's course list.
func (s *CourseService) TeacherCourses(ctx context.Context, teacherID string) ([]models.TeacherCourse, error) {
	courses, err := s.store.TeacherCourses(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teacher courses")
	}
	return courses, nil
}

// CourseStudents returns the roster for one course.
func (s *CourseService) CourseStudents(ctx context.Context, courseID string) ([]models.CourseStudent, error) {
	students, err := s.store.CourseStudents(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list course students")
	}
	return students, nil
}

// ToggleStatus flips a course between active and archived.
func (s *CourseService) ToggleStatus(ctx context.Context, courseID string) ([]models.TeacherCourse, error) {
	courses, err := s.store.ToggleCourseStatus(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to toggle course status")
	}
	return courses, nil
}

// AnnounceMaterial broadcasts a notice that new material was published.
func (s *CourseService) AnnounceMaterial(ctx context.Context, req AnnounceMaterialRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload")
	}
	if s.notifier == nil {
		return nil
	}

	_, err := s.notifier.Send(ctx, SendNotificationRequest{
		UserID:  models.NotificationAudienceAll,
		Title:   "Nuevo material disponible",
		Message: fmt.Sprintf("Se publicó %q en %s.", req.Title, req.CourseName),
		Type:    models.NotificationInfo,
	})
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to announce material")
	}
	return nil
}
