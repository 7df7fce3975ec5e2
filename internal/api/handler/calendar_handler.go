package handler

import (
	"net/http"

	"github.com/MyelinBots/stillalive-go/internal/services/calendar_view"
	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	view *calendar_view.View
}

func NewCalendarHandler(view *calendar_view.View) *CalendarHandler {
	return &CalendarHandler{view: view}
}

type CalendarResponse struct {
	Events []calendar_view.CalendarEvent `json:"events"`
	Legend []calendar_view.LegendEntry   `json:"legend"`
}

func (h *CalendarHandler) Month(c *gin.Context) {
	ctx := c.Request.Context()
	year, month, err := yearMonthParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	events, err := h.view.MonthEvents(ctx, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	legend, err := h.view.Legend(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CalendarResponse{Events: events, Legend: legend})
}
