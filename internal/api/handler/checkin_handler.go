package handler

import (
	"net/http"

	"github.com/MyelinBots/stillalive-go/internal/services/calendar_view"
	"github.com/MyelinBots/stillalive-go/internal/services/checkins"
	"github.com/MyelinBots/stillalive-go/internal/services/context_manager"
	"github.com/gin-gonic/gin"
)

type CheckinHandler struct {
	checkins checkins.Service
	view     *calendar_view.View
}

func NewCheckinHandler(checkinService checkins.Service, view *calendar_view.View) *CheckinHandler {
	return &CheckinHandler{checkins: checkinService, view: view}
}

// All returns every check-in, newest first.
func (h *CheckinHandler) All(c *gin.Context) {
	records, err := h.checkins.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *CheckinHandler) Month(c *gin.Context) {
	year, month, err := yearMonthParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.checkins.GetMonth(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CheckinHandler) Day(c *gin.Context) {
	date, err := dateParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := h.checkins.GetDay(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Mine returns the caller's check-in for a date, used to fill the edit form.
func (h *CheckinHandler) Mine(c *gin.Context) {
	ctx := c.Request.Context()
	username, _ := context_manager.GetUsernameContext(ctx)

	date, err := dateParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	state, err := h.checkins.State(ctx, date, username)
	if err != nil {
		respondError(c, err)
		return
	}
	message, err := h.view.ExistingMessage(ctx, date, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckinStateResponse{
		Date:     date.String(),
		Username: username,
		State:    string(state),
		Message:  message,
	})
}

// Save applies the check-in form for the caller.
func (h *CheckinHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()
	username, _ := context_manager.GetUsernameContext(ctx)

	date, err := dateParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req SaveCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	state, err := h.checkins.Save(ctx, date, username, *req.Alive, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	message := ""
	if state == checkins.StatePresentWithMessage {
		message, err = h.view.ExistingMessage(ctx, date, username)
		if err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, CheckinStateResponse{
		Date:     date.String(),
		Username: username,
		State:    string(state),
		Message:  message,
	})
}

func (h *CheckinHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	username, _ := context_manager.GetUsernameContext(ctx)

	date, err := dateParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.checkins.Delete(ctx, date, username); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
