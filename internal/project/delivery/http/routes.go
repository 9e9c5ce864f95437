package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The literal routes (bulk, metrics) must be declared before the :id
// wildcard so gin does not capture them as IDs.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	projects := rg.Group("/projects")
	{
		projects.PUT("/bulk", mw.Auth(), h.BulkUpdate)
		projects.GET("/metrics", mw.Auth(), h.Metrics)

		projects.POST("", mw.Auth(), h.Create)
		projects.GET("", mw.Auth(), h.List)
		projects.GET("/:id", mw.Auth(), h.Detail)
		projects.PUT("/:id", mw.Auth(), h.Update)
		projects.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
