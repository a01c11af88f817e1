package routes

import (
	"fukuro_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler, admin gin.HandlerFunc) {
	projects := rg.Group(PathProjects)
	{
		// The dashboard is reachable through the shared project link.
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.GetProject)
		projects.GET("/:id/share.png", h.ShareQR)
		projects.POST("", admin, h.CreateProject)

		projects.POST("/:id/links", admin, h.AddLink)
		projects.DELETE("/:id/links/:link_id", admin, h.DeleteLink)

		projects.POST("/:id/deliverables", admin, h.AddDeliverableLink)
		projects.POST("/:id/deliverables/uploads", admin, h.RequestUpload)
		projects.GET("/:id/deliverables/:deliverable_id/download", h.DownloadDeliverable)
		projects.PATCH("/:id/deliverables/:deliverable_id/approval", admin, h.ToggleApproval)
		projects.DELETE("/:id/deliverables/:deliverable_id", admin, h.DeleteDeliverable)

		// Client review comments.
		projects.POST("/:id/deliverables/:deliverable_id/comments", h.AddComment)
		projects.DELETE("/:id/deliverables/:deliverable_id/comments/:comment_id", h.DeleteComment)
	}
}
