package httpserver

import (
	"fmt"
	"net/http"

	"backoffice-api/internal/domain"
	ticketsvc "backoffice-api/internal/service/ticket"
	"github.com/gin-gonic/gin"
)

func listTicketsHandler(svc TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := domain.TicketStatus(c.Query("status"))
		if status != "" && !domain.KnownTicketStatus(status) {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("unknown status %q", status))
			return
		}
		tickets, err := svc.List(c.Request.Context(), status)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal error")
			return
		}
		if tickets == nil {
			tickets = []domain.Ticket{}
		}
		respondList(c, tickets, len(tickets))
	}
}

func getTicketHandler(svc TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := svc.Get(c.Request.Context(), c.Param("ticketID"))
		if err != nil {
			respondGetError(c, err, "ticket not found")
			return
		}
		respondData(c, http.StatusOK, t)
	}
}

func createTicketHandler(svc TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ticketsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		t, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondMutationError(c, err, "ticket not found")
			return
		}
		respondData(c, http.StatusCreated, t)
	}
}

func updateTicketHandler(svc TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ticketsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		t, err := svc.Update(c.Request.Context(), c.Param("ticketID"), in)
		if err != nil {
			respondMutationError(c, err, "ticket not found")
			return
		}
		respondData(c, http.StatusOK, t)
	}
}

func addTicketCommentHandler(svc TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ticketsvc.CommentInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		comment, err := svc.AddComment(c.Request.Context(), c.Param("ticketID"), in)
		if err != nil {
			respondMutationError(c, err, "ticket not found")
			return
		}
		respondData(c, http.StatusCreated, comment)
	}
}
