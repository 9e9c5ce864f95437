package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/project"
	"tax-practice-management/pkg/log"
)

// Handler is the public interface for the project HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	BulkUpdate(c *gin.Context)
	Metrics(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc project.UseCase
}

// New creates a new HTTP handler for the project domain.
func New(l log.Logger, uc project.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
