package handler

import (
	"net/http"

	"github.com/MyelinBots/stillalive-go/internal/faults"
	"github.com/MyelinBots/stillalive-go/internal/services/auth"
	"github.com/MyelinBots/stillalive-go/internal/services/context_manager"
	"github.com/MyelinBots/stillalive-go/internal/services/users"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type UserHandler struct {
	users         users.Service
	authenticator auth.Authenticator
}

func NewUserHandler(userService users.Service, authenticator auth.Authenticator) *UserHandler {
	return &UserHandler{users: userService, authenticator: authenticator}
}

// List returns the roster with the color each member is drawn in.
func (h *UserHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.users.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]UserDTO, 0, len(list))
	if err := copier.Copy(&out, &list); err != nil {
		handleError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
		return
	}
	for i := range out {
		if out[i].Color == "" {
			out[i].Color = users.DefaultColor
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()
	username, _ := context_manager.GetUsernameContext(ctx)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ok, err := h.authenticator.Verify(ctx, username, req.CurrentPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		respondError(c, faults.Auth("current password is incorrect"))
		return
	}

	if err := h.users.SetPassword(ctx, username, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ChangeColor(c *gin.Context) {
	ctx := c.Request.Context()
	username, _ := context_manager.GetUsernameContext(ctx)

	var req ChangeColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.users.SetColor(ctx, username, req.Color); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
