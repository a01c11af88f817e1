package routes

import (
	"fukuro_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler, admin gin.HandlerFunc) {
	quotes := rg.Group(PathQuotes)
	{
		// Public form endpoints.
		quotes.POST("/preview", h.PreviewQuote)
		quotes.POST("", h.SubmitQuote)

		// Studio review.
		quotes.GET("", admin, h.ListQuotes)
		quotes.GET("/:id", admin, h.GetQuote)
		quotes.GET("/:id/receipt", admin, h.GetReceipt)
		quotes.PATCH("/:id/accept", admin, h.AcceptQuote)
		quotes.PATCH("/:id/reject", admin, h.RejectQuote)
		quotes.PATCH("/:id/cancel", admin, h.CancelQuote)
	}
}
