package http

import (
	"github.com/gin-gonic/gin"

	"autonomous-barman/internal/bar"
	"autonomous-barman/pkg/log"
)

// Handler is the public interface for the bar HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ListCocktails(c *gin.Context)
	DispenserStatus(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc bar.UseCase
}

// New creates a new HTTP handler for the bar domain.
func New(l log.Logger, uc bar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
