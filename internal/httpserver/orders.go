package httpserver

import (
	"net/http"

	"savage-storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

func adminListOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			orders []domain.Order
			err    error
		)
		if status := c.Query("status"); status != "" {
			orders, err = svc.ListByStatus(c.Request.Context(), status)
		} else {
			orders, err = svc.List(c.Request.Context())
		}
		if err != nil {
			respondError(c, err, "Failed to load orders")
			return
		}
		c.JSON(http.StatusOK, orderList(orders))
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func updateOrderStatusHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			respondError(c, err, "Failed to update order status")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

func ordersByEmailHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListByEmail(c.Request.Context(), c.Query("email"))
		if err != nil {
			respondError(c, err, "Failed to load orders")
			return
		}
		c.JSON(http.StatusOK, orderList(orders))
	}
}
