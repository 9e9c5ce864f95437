package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	templates := rg.Group("/templates")
	{
		templates.POST("", mw.Auth(), h.Create)
		templates.GET("", mw.Auth(), h.List)
		templates.GET("/:id", mw.Auth(), h.Detail)
		templates.PUT("/:id", mw.Auth(), h.Update)
		templates.DELETE("/:id", mw.Auth(), h.Delete)
		templates.POST("/:id/expand", mw.Auth(), h.Expand)
		templates.POST("/:id/tasks/:taskId/reorder", mw.Auth(), h.Reorder)
	}
}
