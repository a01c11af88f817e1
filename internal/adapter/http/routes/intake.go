package routes

import (
	"fukuro_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addIntakeRoutes mounts the chat intake. Only the calls that may reach the
// extractor are rate limited and share the concurrency slots.
func addIntakeRoutes(rg *gin.RouterGroup, h *handlers.IntakeHandler, limit, slots gin.HandlerFunc) {
	sessions := rg.Group(PathIntake)
	{
		sessions.POST("", limit, h.StartSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/messages", limit, slots, h.PostMessage)
		sessions.POST("/:id/reset", h.ResetSession)
		sessions.POST("/:id/submit", h.SubmitSession)
	}
}
