package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isfdyt26/portal-api/internal/models"
	"github.com/isfdyt26/portal-api/internal/service"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/response"
)

// JustificationHandler wires absence justifications to HTTP routes.
type JustificationHandler struct {
	justifications *service.JustificationService
}

// NewJustificationHandler constructs a new JustificationHandler.
func NewJustificationHandler(justifications *service.JustificationService) *JustificationHandler {
	return &JustificationHandler{justifications: justifications}
}

// List godoc
// @Summary List justification requests
// @Tags Justifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /justifications [get]
func (h *JustificationHandler) List(c *gin.Context) {
	reqs, err := h.justifications.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reqs, nil)
}

// Submit godoc
// @Summary Submit an absence justification
// @Tags Justifications
// @Accept json
// @Produce json
// @Param payload body service.SubmitJustificationRequest true "Justification"
// @Success 201 {object} response.Envelope
// @Router /justifications [post]
func (h *JustificationHandler) Submit(c *gin.Context) {
	var req service.SubmitJustificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid justification payload"))
		return
	}

	created, err := h.justifications.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Decide godoc
// @Summary Approve or reject a justification
// @Tags Justifications
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Envelope
// @Router /justifications/{id}/status [put]
func (h *JustificationHandler) Decide(c *gin.Context) {
	var req struct {
		Status models.JustificationStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid decision payload"))
		return
	}

	updated, err := h.justifications.Decide(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}
