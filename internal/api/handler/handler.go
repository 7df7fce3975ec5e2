// Package handler holds the JSON endpoints of the check-in API.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	log "log/slog"

	"github.com/MyelinBots/stillalive-go/internal/calendar"
	"github.com/MyelinBots/stillalive-go/internal/faults"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorMap gives the HTTP status for each fault, first match wins. Storage
// comes first so a wrapped storage fault never surfaces as a client error.
// Anything unmatched is a 500.
var ErrorMap = []struct {
	Err    error
	Status int
}{
	{faults.ErrStorage, http.StatusInternalServerError},
	{faults.ErrValidation, http.StatusBadRequest},
	{faults.ErrAuth, http.StatusUnauthorized},
	{faults.ErrNotFound, http.StatusNotFound},
}

func handleError(c *gin.Context, status int, message string, err error) {
	log.ErrorContext(c.Request.Context(), "request failed", "status", status, "error", err)
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": message})
}

// respondError maps err onto a status and a message that is safe to show.
func respondError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		handleError(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	for _, m := range ErrorMap {
		if !errors.Is(err, m.Err) {
			continue
		}
		message := http.StatusText(m.Status)
		if m.Status < http.StatusInternalServerError {
			if msg := faults.Message(err); msg != "" {
				message = msg
			}
		}
		handleError(c, m.Status, message, err)
		return
	}
	handleError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
}

func bindError(c *gin.Context, err error) {
	handleError(c, http.StatusBadRequest, "invalid request body", err)
}

func yearMonthParam(c *gin.Context) (int, time.Month, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, faults.Validation("invalid year %q", c.Param("year"))
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, faults.Validation("invalid month %q", c.Param("month"))
	}
	return year, time.Month(month), nil
}

func dateParam(c *gin.Context) (calendar.Date, error) {
	return calendar.Parse(c.Param("date"))
}
