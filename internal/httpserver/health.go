package httpserver

import (
	"net/http"

	"autonomous-barman/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage  = "El barman está detrás de la barra"
	ClosedMessage  = "La barra está cerrada: no hay carta cargada"
	HealthVersion  = "1.0.0"
	ServiceName    = "autonomous-barman"
	ServiceUnready = "closed"
)

// BarInfo is what the health routes tell about the bar behind the API.
type BarInfo struct {
	Resolver    string `json:"resolver"`
	PortionMode string `json:"portion_mode"`
	Recipes     int    `json:"recipes"`
	Pumps       int    `json:"pumps"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy and how the bar is set up
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"bar":     srv.bar,
	})
}

// readyCheck reports ready once a menu with at least one pump is loaded.
// @Summary Readiness Check
// @Description Ready when the bar has recipes and pumps to pour them
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "No menu loaded"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.bar.Recipes == 0 || srv.bar.Pumps == 0 {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   ClosedMessage,
			Data:      gin.H{"status": ServiceUnready, "service": ServiceName, "bar": srv.bar},
		})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"bar":     srv.bar,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
