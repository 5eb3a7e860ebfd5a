package httpserver

import (
	"fmt"
	"net/http"

	"backoffice-api/internal/domain"
	ordersvc "backoffice-api/internal/service/order"
	"github.com/gin-gonic/gin"
)

func listOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The status filter is the only caller-caused list error; anything
		// past this point is an internal failure.
		status := domain.OrderStatus(c.Query("status"))
		if status != "" && !domain.KnownOrderStatus(status) {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("unknown status %q", status))
			return
		}
		orders, err := svc.List(c.Request.Context(), c.Query("clientId"), status)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal error")
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		respondList(c, orders, len(orders))
	}
}

func getOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("orderID"))
		if err != nil {
			respondGetError(c, err, "order not found")
			return
		}
		respondData(c, http.StatusOK, o)
	}
}

func createOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		o, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondMutationError(c, err, "order not found")
			return
		}
		respondData(c, http.StatusCreated, o)
	}
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func updateOrderStatusHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in orderStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "status required")
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), c.Param("orderID"), domain.OrderStatus(in.Status))
		if err != nil {
			respondMutationError(c, err, "order not found")
			return
		}
		respondData(c, http.StatusOK, o)
	}
}
