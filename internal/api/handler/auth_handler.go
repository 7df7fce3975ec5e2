package handler

import (
	"net/http"

	"github.com/MyelinBots/stillalive-go/internal/services/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authenticator auth.Authenticator
}

func NewAuthHandler(authenticator auth.Authenticator) *AuthHandler {
	return &AuthHandler{authenticator: authenticator}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, expiresAt, err := h.authenticator.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}
