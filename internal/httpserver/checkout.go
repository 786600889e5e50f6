package httpserver

import (
	"net/http"

	ordersvc "savage-storefront/internal/service/order"

	"github.com/gin-gonic/gin"
)

// checkoutHandler places an order from the submitted payload. The payload
// carries the cart snapshot and client-computed total, mirroring how the
// storefront submits its local cart; the session cart is discarded once
// the order lands.
func checkoutHandler(svc OrderService, sessions *sessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		order, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "Failed to place order. Please try again.")
			return
		}

		sessions.drop(sessionID(c))
		c.JSON(http.StatusCreated, order)
	}
}
