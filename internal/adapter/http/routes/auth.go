package routes

import (
	"fukuro_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.Group(PathAuth).POST("/login", h.Login)
}
