package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isfdyt26/portal-api/pkg/assistant"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/response"
)

// AssistantHandler exposes the planning assistant. Responses are always
// 200 with user-facing text; upstream failures surface as canned messages.
type AssistantHandler struct {
	assistant *assistant.Client
}

// NewAssistantHandler constructs a new AssistantHandler.
func NewAssistantHandler(client *assistant.Client) *AssistantHandler {
	return &AssistantHandler{assistant: client}
}

// Tutor godoc
// @Summary Ask the study tutor a question
// @Tags Assistant
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assistant/tutor [post]
func (h *AssistantHandler) Tutor(c *gin.Context) {
	var req struct {
		Question string `json:"question" binding:"required"`
		Subject  string `json:"subject"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid tutor payload"))
		return
	}

	text := h.assistant.TutorResponse(c.Request.Context(), req.Question, req.Subject)
	response.JSON(c, http.StatusOK, gin.H{"response": text}, nil)
}

// LessonPlan godoc
// @Summary Generate a lesson plan
// @Tags Assistant
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assistant/lesson-plan [post]
func (h *AssistantHandler) LessonPlan(c *gin.Context) {
	var req struct {
		Topic      string `json:"topic" binding:"required"`
		GradeLevel string `json:"gradeLevel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson plan payload"))
		return
	}

	text := h.assistant.LessonPlan(c.Request.Context(), req.Topic, req.GradeLevel)
	response.JSON(c, http.StatusOK, gin.H{"response": text}, nil)
}

// Analyze godoc
// @Summary Analyze institutional data
// @Tags Assistant
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assistant/analysis [post]
func (h *AssistantHandler) Analyze(c *gin.Context) {
	var req struct {
		DataDescription string `json:"dataDescription" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid analysis payload"))
		return
	}

	text := h.assistant.AnalyzeInstitutionalData(c.Request.Context(), req.DataDescription)
	response.JSON(c, http.StatusOK, gin.H{"response": text}, nil)
}
