package httpserver

import (
	"net/http"

	"backoffice-api/internal/domain"
	productsvc "backoffice-api/internal/service/product"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), c.Query("distributorId"), c.Query("q"))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal error")
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		respondList(c, products, len(products))
	}
}

func getProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("productID"))
		if err != nil {
			respondGetError(c, err, "product not found")
			return
		}
		respondData(c, http.StatusOK, p)
	}
}

func createProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		p, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondMutationError(c, err, "product not found")
			return
		}
		respondData(c, http.StatusCreated, p)
	}
}

func updateProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid json body")
			return
		}
		p, err := svc.Update(c.Request.Context(), c.Param("productID"), in)
		if err != nil {
			respondMutationError(c, err, "product not found")
			return
		}
		respondData(c, http.StatusOK, p)
	}
}
