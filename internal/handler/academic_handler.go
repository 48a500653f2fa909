package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isfdyt26/portal-api/internal/service"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/response"
)

// AcademicHandler wires careers and classrooms to HTTP routes.
type AcademicHandler struct {
	academics *service.AcademicService
}

// NewAcademicHandler constructs a new AcademicHandler.
func NewAcademicHandler(academics *service.AcademicService) *AcademicHandler {
	return &AcademicHandler{academics: academics}
}

// ListCareers godoc
// @Summary List careers with subjects
// @Tags Academics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /careers [get]
func (h *AcademicHandler) ListCareers(c *gin.Context) {
	careers, err := h.academics.ListCareers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, careers, nil)
}

// SaveCareer godoc
// @Summary Create or replace a career
// @Tags Academics
// @Accept json
// @Produce json
// @Param payload body service.SaveCareerRequest true "Career"
// @Success 200 {object} response.Envelope
// @Router /careers [put]
func (h *AcademicHandler) SaveCareer(c *gin.Context) {
	var req service.SaveCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid career payload"))
		return
	}

	career, err := h.academics.SaveCareer(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, career, nil)
}

// DeleteCareer godoc
// @Summary Delete career
// @Tags Academics
// @Param id path string true "Career ID"
// @Success 204
// @Router /careers/{id} [delete]
func (h *AcademicHandler) DeleteCareer(c *gin.Context) {
	if err := h.academics.DeleteCareer(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListClassrooms godoc
// @Summary List classrooms
// @Tags Academics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classrooms [get]
func (h *AcademicHandler) ListClassrooms(c *gin.Context) {
	rooms, err := h.academics.ListClassrooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, nil)
}

// SaveClassroom godoc
// @Summary Create or replace a classroom
// @Tags Academics
// @Accept json
// @Produce json
// @Param payload body service.SaveClassroomRequest true "Classroom"
// @Success 200 {object} response.Envelope
// @Router /classrooms [put]
func (h *AcademicHandler) SaveClassroom(c *gin.Context) {
	var req service.SaveClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid classroom payload"))
		return
	}

	room, err := h.academics.SaveClassroom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, room, nil)
}

// DeleteClassroom godoc
// @Summary Delete classroom
// @Tags Academics
// @Param id path string true "Classroom ID"
// @Success 204
// @Router /classrooms/{id} [delete]
func (h *AcademicHandler) DeleteClassroom(c *gin.Context) {
	if err := h.academics.DeleteClassroom(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
