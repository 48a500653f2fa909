package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/isfdyt26/portal-api/internal/service"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/response"
)

// ChatHandler wires the chat service to HTTP routes.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs a new ChatHandler.
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Contacts godoc
// @Summary List chat contacts with unread counts
// @Tags Chat
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /chat/contacts [get]
func (h *ChatHandler) Contacts(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	contacts, err := h.chat.Contacts(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, contacts, nil)
}

// Groups godoc
// @Summary Groups for the caller
// @Tags Chat
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /chat/groups [get]
func (h *ChatHandler) Groups(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	groups, err := h.chat.Groups(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups, nil)
}

// CreateGroup godoc
// @Summary Create a group
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body service.CreateGroupRequest true "Group"
// @Success 201 {object} response.Envelope
// @Router /chat/groups [post]
func (h *ChatHandler) CreateGroup(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid group payload"))
		return
	}

	group, err := h.chat.CreateGroup(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, group)
}

// LeaveGroup godoc
// @Summary Leave a group
// @Tags Chat
// @Param id path string true "Group ID"
// @Success 204
// @Router /chat/groups/{id}/leave [post]
func (h *ChatHandler) LeaveGroup(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.chat.LeaveGroup(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UpdateGroupAvatar godoc
// @Summary Replace a group avatar
// @Tags Chat
// @Accept json
// @Param id path string true "Group ID"
// @Success 204
// @Router /chat/groups/{id}/avatar [put]
func (h *ChatHandler) UpdateGroupAvatar(c *gin.Context) {
	var req struct {
		Avatar string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid avatar payload"))
		return
	}

	if err := h.chat.UpdateGroupAvatar(c.Request.Context(), c.Param("id"), req.Avatar); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Messages godoc
// @Summary Conversation with a partner or group
// @Tags Chat
// @Produce json
// @Param partner_id query string true "Partner or group ID"
// @Param group query bool false "Group conversation"
// @Success 200 {object} response.Envelope
// @Router /chat/messages [get]
func (h *ChatHandler) Messages(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	partnerID := c.Query("partner_id")
	if partnerID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "partner_id is required"))
		return
	}
	isGroup, _ := strconv.ParseBool(c.DefaultQuery("group", "false"))

	messages, err := h.chat.Messages(c.Request.Context(), claims.UserID, partnerID, isGroup)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, messages, nil)
}

// Send godoc
// @Summary Send a message
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body service.SendMessageRequest true "Message"
// @Success 201 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /chat/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid message payload"))
		return
	}

	msg, err := h.chat.Send(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// MarkRead godoc
// @Summary Mark a direct conversation read
// @Tags Chat
// @Param otherId path string true "Sender ID"
// @Success 204
// @Router /chat/messages/{otherId}/read [post]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.chat.MarkRead(c.Request.Context(), claims.UserID, c.Param("otherId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Clear godoc
// @Summary Permanently clear a conversation
// @Tags Chat
// @Param otherId path string true "Partner or group ID"
// @Success 204
// @Router /chat/messages/{otherId} [delete]
func (h *ChatHandler) Clear(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.chat.Clear(c.Request.Context(), claims.UserID, c.Param("otherId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UnreadCount godoc
// @Summary Unread direct message count for the caller
// @Tags Chat
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /chat/unread-count [get]
func (h *ChatHandler) UnreadCount(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	count, err := h.chat.UnreadCount(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"count": count}, nil)
}

// ToggleBlock godoc
// @Summary Toggle blocking a user
// @Tags Chat
// @Produce json
// @Param userId path string true "Target user ID"
// @Success 200 {object} response.Envelope
// @Router /chat/block/{userId} [post]
func (h *ChatHandler) ToggleBlock(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	blocked, err := h.chat.ToggleBlock(c.Request.Context(), claims.UserID, c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"blocked": blocked}, nil)
}
