package http

import "github.com/gin-gonic/gin"

// MapMonitorRoutes attaches the monitoring endpoints to the router group.
func MapMonitorRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/scheduler/start", h.StartScheduler)
	r.POST("/scheduler/stop", h.StopScheduler)

	r.POST("/triggers", h.RegisterTrigger)
	r.GET("/triggers", h.ListTriggers)
	r.PATCH("/triggers/:id/deactivate", h.DeactivateTrigger)

	r.GET("/alerts", h.GetAlerts)
	r.PATCH("/alerts/:id/acknowledge", h.AcknowledgeAlert)
	r.POST("/alerts/:id/actions", h.RecordAlertAction)

	r.GET("/dashboard", h.Dashboard)
	r.POST("/digest", h.Digest)

	r.POST("/accounts/process", h.ProcessAccounts)
}
