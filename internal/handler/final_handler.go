package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isfdyt26/portal-api/internal/service"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/response"
)

// FinalHandler wires final exam sessions to HTTP routes.
type FinalHandler struct {
	finals *service.FinalService
}

// NewFinalHandler constructs a new FinalHandler.
func NewFinalHandler(finals *service.FinalService) *FinalHandler {
	return &FinalHandler{finals: finals}
}

// List godoc
// @Summary List final exam sessions for the caller
// @Tags Finals
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /finals [get]
func (h *FinalHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	sessions, err := h.finals.ListFor(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}

// Create godoc
// @Summary Schedule a final exam session
// @Tags Finals
// @Accept json
// @Produce json
// @Param payload body service.CreateFinalExamRequest true "Session"
// @Success 201 {object} response.Envelope
// @Router /finals [post]
func (h *FinalHandler) Create(c *gin.Context) {
	var req service.CreateFinalExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid final exam payload"))
		return
	}

	exam, err := h.finals.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// Delete godoc
// @Summary Delete a final exam session
// @Tags Finals
// @Param id path string true "Session ID"
// @Success 204
// @Router /finals/{id} [delete]
func (h *FinalHandler) Delete(c *gin.Context) {
	if err := h.finals.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ToggleRegistration godoc
// @Summary Toggle the caller's registration for a session
// @Tags Finals
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /finals/{id}/registration [post]
func (h *FinalHandler) ToggleRegistration(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	registered, err := h.finals.ToggleRegistration(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"registered": registered}, nil)
}
