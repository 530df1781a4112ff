package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// healthCheck reports the service and its dependencies.
// @Summary Health Check
// @Description Check service health including Redis and MinIO connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} map[string]interface{} "A dependency is unhealthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	status := http.StatusOK
	checks := gin.H{}

	if err := srv.redis.Ping(ctx); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.healthCheck: redis: %v", err)
		checks["redis"] = "unhealthy"
		status = http.StatusServiceUnavailable
	} else {
		checks["redis"] = "ok"
	}

	if srv.minio != nil {
		if err := srv.minio.HealthCheck(ctx); err != nil {
			srv.logger.Errorf(ctx, "internal.httpserver.healthCheck: minio: %v", err)
			checks["minio"] = "unhealthy"
			status = http.StatusServiceUnavailable
		} else {
			checks["minio"] = "ok"
		}
	}

	if srv.hub != nil {
		active, sent, dropped := srv.hub.Stats()
		checks["alert_stream"] = gin.H{
			"active_connections": active,
			"events_sent":        sent,
			"events_dropped":     dropped,
		}
	}

	c.JSON(status, gin.H{
		"status": http.StatusText(status),
		"checks": checks,
	})
}

// liveCheck is the bare liveness probe.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
