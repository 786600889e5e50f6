package httpserver

import (
	"errors"
	"net/http"

	"savage-storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps a service or repository error onto an HTTP status.
// Validation failures carry their own message; anything else collapses to
// the generic failure message so backend details never leak to the client.
func respondError(c *gin.Context, err error, failureMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMessage})
	}
}

func productList(products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	return products
}

func orderList(orders []domain.Order) []domain.Order {
	if orders == nil {
		return []domain.Order{}
	}
	return orders
}
