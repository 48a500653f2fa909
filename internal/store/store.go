package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	"github.com/isfdyt26/portal-api/internal/store/mockstore"
	"github.com/isfdyt26/portal-api/internal/store/pgstore"
	"github.com/isfdyt26/portal-api/pkg/config"
	"github.com/isfdyt26/portal-api/pkg/database"
)

// Store is the single persistence facade. Every data operation of the portal
// goes through it, and callers never learn which backend serves them.
//
// Lookups return (nil, nil) when the record does not exist; services decide
// whether absence is an error.
type Store interface {
	// Initialize prepares the backend (seeding the local one, verifying the
	// remote one). Called once at startup.
	Initialize(ctx context.Context) error

	// Users.
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	AddUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id string, updates models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	// Careers and classrooms.
	ListCareers(ctx context.Context) ([]models.Career, error)
	SaveCareer(ctx context.Context, career models.Career) (*models.Career, error)
	DeleteCareer(ctx context.Context, id string) error
	ListClassrooms(ctx context.Context) ([]models.Classroom, error)
	SaveClassroom(ctx context.Context, room models.Classroom) (*models.Classroom, error)
	DeleteClassroom(ctx context.Context, id string) error

	// Calendar.
	ListEvents(ctx context.Context) ([]models.CalendarEvent, error)
	AddEvent(ctx context.Context, event models.CalendarEvent) (*models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error

	// Notifications.
	NotificationsFor(ctx context.Context, userID string) ([]models.Notification, error)
	UnreadNotificationCount(ctx context.Context, userID string) (int, error)
	AddNotification(ctx context.Context, n models.Notification) (*models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, id string) error

	// Chat.
	GroupsFor(ctx context.Context, userID string) ([]models.ChatGroup, error)
	CreateGroup(ctx context.Context, name string, memberIDs []string, adminID string) (*models.ChatGroup, error)
	LeaveGroup(ctx context.Context, userID, groupID string) error
	UpdateGroupAvatar(ctx context.Context, groupID, avatar string) error
	Messages(ctx context.Context, userID, otherID string, isGroup bool) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.ChatMessage, error)
	SendGroupMessage(ctx context.Context, senderID, groupID, content string) (*models.ChatMessage, error)
	MarkMessagesRead(ctx context.Context, userID, senderID string) error
	ClearChat(ctx context.Context, userID, otherID string) error
	UnreadMessageCount(ctx context.Context, userID string) (int, error)
	ToggleBlock(ctx context.Context, userID, targetID string) (bool, error)
	IsBlocked(ctx context.Context, userID, targetID string) (bool, error)
	Contacts(ctx context.Context, userID string) ([]models.Contact, error)

	// Justifications.
	ListJustifications(ctx context.Context) ([]models.JustificationRequest, error)
	AddJustification(ctx context.Context, req models.JustificationRequest) (*models.JustificationRequest, error)
	UpdateJustificationStatus(ctx context.Context, id string, status models.JustificationStatus) (*models.JustificationRequest, error)

	// Final exams.
	FinalExamsFor(ctx context.Context, userID string) ([]models.FinalExamSession, error)
	AddFinalExam(ctx context.Context, exam models.FinalExam) (*models.FinalExam, error)
	DeleteFinalExam(ctx context.Context, id string) error
	ToggleFinalRegistration(ctx context.Context, userID, examID string) (bool, error)

	// Courses.
	StudentCourses(ctx context.Context, studentID string) ([]models.StudentCourse, error)
	TeacherCourses(ctx context.Context, teacherID string) ([]models.TeacherCourse, error)
	CourseStudents(ctx context.Context, courseID string) ([]models.CourseStudent, error)
	ToggleCourseStatus(ctx context.Context, courseID string) ([]models.TeacherCourse, error)
}

// New selects the backend from configuration. The decision happens here,
// exactly once; a remote endpoint plus access key selects the relational
// backend, anything less falls back to the local one.
func New(cfg *config.Config, logger *zap.Logger) (Store, error) {
	catalog := mockstore.NewCourseCatalog()

	if cfg.Remote.Configured() {
		db, err := database.NewPostgres(cfg.Remote)
		if err != nil {
			return nil, err
		}
		logger.Info("using remote database backend")
		return pgstore.New(db, catalog, logger), nil
	}

	logger.Info("remote database not configured, using local mock backend")
	return mockstore.New(cfg.Mock, catalog, logger), nil
}
