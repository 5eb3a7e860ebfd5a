package httpserver

import (
	"net/http"

	"backoffice-api/internal/domain"
	clientsvc "backoffice-api/internal/service/client"
	"github.com/gin-gonic/gin"
)

func listClientsHandler(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		clients, err := svc.List(c.Request.Context(), c.Query("q"))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal error")
			return
		}
		if clients == nil {
			clients = []domain.Client{}
		}
		respondList(c, clients, len(clients))
	}
}

func getClientHandler(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, err := svc.Get(c.Request.Context(), c.Param("clientID"))
		if err != nil {
			respondGetError(c, err, "client not found")
			return
		}
		respondData(c, http.StatusOK, client)
	}
}

func createClientHandler(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in clientsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		client, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondMutationError(c, err, "client not found")
			return
		}
		respondData(c, http.StatusCreated, client)
	}
}

func updateClientHandler(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in clientsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		client, err := svc.Update(c.Request.Context(), c.Param("clientID"), in)
		if err != nil {
			respondMutationError(c, err, "client not found")
			return
		}
		respondData(c, http.StatusOK, client)
	}
}

func listClientUsersHandler(svc ClientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers(c.Request.Context(), c.Param("clientID"))
		if err != nil {
			respondGetError(c, err, "client not found")
			return
		}
		if users == nil {
			users = []domain.ClientUser{}
		}
		respondList(c, users, len(users))
	}
}
