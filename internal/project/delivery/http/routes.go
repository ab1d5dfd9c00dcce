package http

import (
	"project-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The whole
// API group is rate limited and request logged.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit(), mw.RequestLog())

	projects := rg.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Detail)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
		projects.POST("/:id/archive", h.ToggleArchive)
		projects.PUT("/:id/tasks/:taskId/status", h.SetTaskStatus)
		projects.GET("/:id/timeline", h.Timeline)
	}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Stats)
		dashboard.GET("/calendar", h.Calendar)
	}
}
