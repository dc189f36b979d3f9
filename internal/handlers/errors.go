package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/common"
)

// respondError maps service errors onto the wire. Known failures carry the
// supplied user-facing message; anything else is logged and hidden behind a
// generic 500, so store internals never leak to the client.
func respondError(c *gin.Context, err error, messages map[error]string) {
	for sentinel, message := range messages {
		if errors.Is(err, sentinel) {
			c.JSON(statusFor(sentinel), gin.H{"error": message})
			return
		}
	}
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
}

func statusFor(sentinel error) int {
	switch sentinel {
	case common.ErrValidation, common.ErrConflict:
		// The frontend treats duplicate submissions as a 400, same as
		// missing input.
		return http.StatusBadRequest
	case common.ErrNotFound:
		return http.StatusNotFound
	case common.ErrForbidden:
		return http.StatusForbidden
	case common.ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
