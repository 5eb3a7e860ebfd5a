package httpserver

import (
	"errors"
	"net/http"

	"backoffice-api/internal/domain"
	"github.com/gin-gonic/gin"
)

// Envelope shapes used across the API: single records as {"data": ...},
// collections as {"data": [...], "total": n}, failures as {"error": "..."}.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

func respondList(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, gin.H{"data": data, "total": total})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// respondGetError maps lookup failures: unknown id is 404, anything else is
// the store misbehaving.
func respondGetError(c *gin.Context, err error, msg string) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, msg)
		return
	}
	respondError(c, http.StatusInternalServerError, "internal error")
}

// respondMutationError maps write failures: unknown id is 404, service
// validation is 400. Services return validation problems as plain errors, so
// their message is safe to surface.
func respondMutationError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	respondError(c, http.StatusBadRequest, err.Error())
}
