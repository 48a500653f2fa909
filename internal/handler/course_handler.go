package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isfdyt26/portal-api/internal/service"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/response"
)

// CourseHandler wires the course dashboards to HTTP routes.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs a new CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// StudentCourses godoc
// @Summary Enrollment view for the caller
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses/student [get]
func (h *CourseHandler) StudentCourses(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	courses, err := h.courses.StudentCourses(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// TeacherCourses godoc
// @Summary Course list for the calling teacher
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses/teacher [get]
func (h *CourseHandler) TeacherCourses(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	courses, err := h.courses.TeacherCourses(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// Students godoc
// @Summary Roster for one course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id}/students [get]
func (h *CourseHandler) Students(c *gin.Context) {
	students, err := h.courses.CourseStudents(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}

// ToggleStatus godoc
// @Summary Flip a course between active and archived
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id}/status [post]
func (h *CourseHandler) ToggleStatus(c *gin.Context) {
	courses, err := h.courses.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// AnnounceMaterial godoc
// @Summary Announce new course material
// @Tags Courses
// @Accept json
// @Success 204
// @Router /courses/materials [post]
func (h *CourseHandler) AnnounceMaterial(c *gin.Context) {
	var req service.AnnounceMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload"))
		return
	}

	if err := h.courses.AnnounceMaterial(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
