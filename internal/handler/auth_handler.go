package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isfdyt26/portal-api/internal/models"
	"github.com/isfdyt26/portal-api/internal/service"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
	"github.com/isfdyt26/portal-api/pkg/response"
)

// AuthHandler wires the auth service to HTTP routes.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
