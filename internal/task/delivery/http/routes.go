package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// classification helper lives under /ai rather than /tasks because it
// classifies unsaved input, not a stored task.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.PUT("/:id/checklist", mw.Auth(), h.UpdateChecklist)
	}

	ai := rg.Group("/ai")
	{
		ai.POST("/classify-task", mw.Auth(), h.Classify)
	}
}
