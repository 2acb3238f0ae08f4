package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/logging"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Every response is wrapped as {success, data|message}, matching the fetch
// client on the frontend.

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func okMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": data})
}

func okList(c *gin.Context, count int, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// failFromErr maps the domain taxonomy onto HTTP statuses. Unrecognized
// errors are logged and surfaced as a generic 500 without internal detail.
func failFromErr(c *gin.Context, err error) {
	var stockErr *usecase.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		fail(c, http.StatusBadRequest, fmt.Sprintf("Only %d items available in stock", stockErr.Available))
	case errors.Is(err, usecase.ErrInvalidArgument):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrEmptyCart):
		fail(c, http.StatusBadRequest, "Cart is empty")
	default:
		logging.From(c).Error("request failed", "error", err)
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
