package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/template"
	"tax-practice-management/pkg/log"
)

// Handler is the public interface for the template HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Expand(c *gin.Context)
	Reorder(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc template.UseCase
}

// New creates a new HTTP handler for the template domain.
func New(l log.Logger, uc template.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
