package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/middleware"
	"github.com/isfdyt26/portal-api/internal/service"
	"github.com/isfdyt26/portal-api/pkg/config"
	"github.com/isfdyt26/portal-api/pkg/logger"
	corsmiddleware "github.com/isfdyt26/portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/isfdyt26/portal-api/pkg/middleware/requestid"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Auth           *AuthHandler
	Users          *UserHandler
	Academics      *AcademicHandler
	Calendar       *CalendarHandler
	Notifications  *NotificationHandler
	Chat           *ChatHandler
	Justifications *JustificationHandler
	Finals         *FinalHandler
	Courses        *CourseHandler
	Assistant      *AssistantHandler
	Exports        *ExportHandler
}

// NewRouter assembles the gin engine. Login, health, metrics and docs stay
// public; everything under the API prefix requires a valid bearer token.
func NewRouter(cfg *config.Config, logr *zap.Logger, auth *service.AuthService, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.New())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST(cfg.APIPrefix+"/auth/login", h.Auth.Login)

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(auth))

	api.GET("/users", h.Users.List)
	api.POST("/users", h.Users.Create)
	api.GET("/users/:id", h.Users.Get)
	api.PATCH("/users/:id", h.Users.Update)
	api.DELETE("/users/:id", h.Users.Delete)

	api.GET("/careers", h.Academics.ListCareers)
	api.PUT("/careers", h.Academics.SaveCareer)
	api.DELETE("/careers/:id", h.Academics.DeleteCareer)
	api.GET("/classrooms", h.Academics.ListClassrooms)
	api.PUT("/classrooms", h.Academics.SaveClassroom)
	api.DELETE("/classrooms/:id", h.Academics.DeleteClassroom)

	api.GET("/events", h.Calendar.List)
	api.POST("/events", h.Calendar.Create)
	api.DELETE("/events/:id", h.Calendar.Delete)

	api.GET("/notifications", h.Notifications.List)
	api.POST("/notifications", h.Notifications.Send)
	api.GET("/notifications/unread-count", h.Notifications.UnreadCount)
	api.POST("/notifications/read-all", h.Notifications.MarkAllRead)
	api.POST("/notifications/:id/read", h.Notifications.MarkRead)
	api.DELETE("/notifications/:id", h.Notifications.Delete)

	api.GET("/chat/contacts", h.Chat.Contacts)
	api.GET("/chat/groups", h.Chat.Groups)
	api.POST("/chat/groups", h.Chat.CreateGroup)
	api.POST("/chat/groups/:id/leave", h.Chat.LeaveGroup)
	api.PUT("/chat/groups/:id/avatar", h.Chat.UpdateGroupAvatar)
	api.GET("/chat/messages", h.Chat.Messages)
	api.POST("/chat/messages", h.Chat.Send)
	api.POST("/chat/messages/:otherId/read", h.Chat.MarkRead)
	api.DELETE("/chat/messages/:otherId", h.Chat.Clear)
	api.GET("/chat/unread-count", h.Chat.UnreadCount)
	api.POST("/chat/block/:userId", h.Chat.ToggleBlock)

	api.GET("/justifications", h.Justifications.List)
	api.POST("/justifications", h.Justifications.Submit)
	api.PUT("/justifications/:id/status", h.Justifications.Decide)

	api.GET("/finals", h.Finals.List)
	api.POST("/finals", h.Finals.Create)
	api.DELETE("/finals/:id", h.Finals.Delete)
	api.POST("/finals/:id/registration", h.Finals.ToggleRegistration)

	api.GET("/courses/student", h.Courses.StudentCourses)
	api.GET("/courses/teacher", h.Courses.TeacherCourses)
	api.GET("/courses/:id/students", h.Courses.Students)
	api.POST("/courses/:id/status", h.Courses.ToggleStatus)
	api.POST("/courses/materials", h.Courses.AnnounceMaterial)

	api.POST("/assistant/tutor", h.Assistant.Tutor)
	api.POST("/assistant/lesson-plan", h.Assistant.LessonPlan)
	api.POST("/assistant/analysis", h.Assistant.Analyze)

	api.GET("/exports/justifications.csv", h.Exports.JustificationsCSV)
	api.GET("/exports/finals.pdf", h.Exports.FinalsPDF)

	return r
}
