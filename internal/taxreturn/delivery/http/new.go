package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/taxreturn"
	"tax-practice-management/pkg/log"
)

// Handler is the public interface for the taxreturn HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc taxreturn.UseCase
}

// New creates a new HTTP handler for the taxreturn domain.
func New(l log.Logger, uc taxreturn.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
