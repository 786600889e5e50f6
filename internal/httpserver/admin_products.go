package httpserver

import (
	"net/http"

	catalogsvc "savage-storefront/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

func adminListProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to load products")
			return
		}
		c.JSON(http.StatusOK, productList(products))
	}
}

// getProductHandler serves the admin edit form's single-product lookup.
func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Failed to load product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func createProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.SaveInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		product, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "Failed to save product")
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.SaveInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		product, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err, "Failed to save product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Failed to delete product")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func seedHandler(seed SeedFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		message, err := seed(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to seed products")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}
