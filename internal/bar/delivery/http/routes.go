package http

import (
	"github.com/gin-gonic/gin"

	"autonomous-barman/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the chat route is rate limited since it is the one that reaches the dispenser.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.GET("/cocktails", h.ListCocktails)
	rg.GET("/dispenser/status", h.DispenserStatus)
}
