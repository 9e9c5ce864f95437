package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	returns := rg.Group("/tax-returns")
	{
		returns.POST("", mw.Auth(), h.Create)
		returns.GET("", mw.Auth(), h.List)
		returns.GET("/:id", mw.Auth(), h.Detail)
		returns.PUT("/:id", mw.Auth(), h.Update)
	}
}
