package httpserver

import (
	"net/http"

	"backoffice-api/internal/domain"
	distributorsvc "backoffice-api/internal/service/distributor"
	"github.com/gin-gonic/gin"
)

func listDistributorsHandler(svc DistributorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		distributors, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal error")
			return
		}
		if distributors == nil {
			distributors = []domain.Distributor{}
		}
		respondList(c, distributors, len(distributors))
	}
}

func getDistributorHandler(svc DistributorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svc.Get(c.Request.Context(), c.Param("distributorID"))
		if err != nil {
			respondGetError(c, err, "distributor not found")
			return
		}
		respondData(c, http.StatusOK, d)
	}
}

func createDistributorHandler(svc DistributorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in distributorsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		d, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondMutationError(c, err, "distributor not found")
			return
		}
		respondData(c, http.StatusCreated, d)
	}
}

func updateDistributorHandler(svc DistributorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in distributorsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		d, err := svc.Update(c.Request.Context(), c.Param("distributorID"), in)
		if err != nil {
			respondMutationError(c, err, "distributor not found")
			return
		}
		respondData(c, http.StatusOK, d)
	}
}
