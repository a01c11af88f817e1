package routes

import (
	"fukuro_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.BillingPaymentHandler, admin gin.HandlerFunc) {
	payments := rg.Group(PathPayments, admin)
	{
		payments.POST("/:quote_id", h.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", h.GetPaymentByQuoteID)
	}
}
