package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	clients := rg.Group("/clients")
	{
		clients.POST("", mw.Auth(), h.Create)
		clients.GET("", mw.Auth(), h.List)
		clients.GET("/:id", mw.Auth(), h.Detail)
		clients.PUT("/:id", mw.Auth(), h.Update)
	}
}
