package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isfdyt26/portal-api/internal/service"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/response"
)

// CalendarHandler wires the calendar service to HTTP routes.
type CalendarHandler struct {
	calendar *service.CalendarService
}

// NewCalendarHandler constructs a new CalendarHandler.
func NewCalendarHandler(calendar *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// List godoc
// @Summary List calendar events
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *CalendarHandler) List(c *gin.Context) {
	events, err := h.calendar.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// Create godoc
// @Summary Create event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body service.AddEventRequest true "Event"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *CalendarHandler) Create(c *gin.Context) {
	var req service.AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload"))
		return
	}

	event, err := h.calendar.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Delete godoc
// @Summary Delete event
// @Tags Calendar
// @Param id path string true "Event ID"
// @Success 204
// @Router /events/{id} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	if err := h.calendar.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
