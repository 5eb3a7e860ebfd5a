package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"backoffice-api/internal/domain"
	"github.com/gin-gonic/gin"
)

// listCartsHandler serves GET /carts?clientId=&userId=. clientId is required;
// a client with no carts gets an empty list, not a 404.
func listCartsHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := strings.TrimSpace(c.Query("clientId"))
		if clientID == "" {
			respondError(c, http.StatusBadRequest, "clientId required")
			return
		}

		carts, err := svc.List(c.Request.Context(), clientID, c.Query("userId"))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal error")
			return
		}
		if carts == nil {
			carts = []domain.Cart{}
		}
		respondList(c, carts, len(carts))
	}
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), c.Param("cartID"))
		if err != nil {
			respondGetError(c, err, "cart not found")
			return
		}
		respondData(c, http.StatusOK, cart)
	}
}

// restoreCartHandler serves POST /carts/:cartID/restore. On success the
// target cart is the only active one for its (client, user) pair.
func restoreCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("cartID")
		cart, err := svc.Restore(c.Request.Context(), cartID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "cart not found")
				return
			}
			logger.Printf("restore cart id=%s error=%v", cartID, err)
			respondError(c, http.StatusInternalServerError, "internal error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": cart, "message": "cart restored"})
	}
}
