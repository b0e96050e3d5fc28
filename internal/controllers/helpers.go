package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"norhamtrans/internal/models"
	"norhamtrans/internal/rules"
)

// rulesError maps an engine error onto an HTTP response.
func rulesError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, rules.ErrDriverNotFound),
		errors.Is(err, rules.ErrItemNotFound),
		errors.Is(err, rules.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, rules.ErrVacationDecision),
		errors.Is(err, rules.ErrAlreadyReturned):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// driverName resolves a driver ID for display; dangling references fall back
// to "unknown" rather than failing.
func driverName(drivers []models.Driver, id string) string {
	for _, d := range drivers {
		if d.ID == id {
			return d.FullName()
		}
	}
	return "unknown"
}
