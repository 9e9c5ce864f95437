package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/client"
	"tax-practice-management/pkg/log"
)

// Handler is the public interface for the client HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc client.UseCase
}

// New creates a new HTTP handler for the client domain.
func New(l log.Logger, uc client.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
