package http

import (
	"github.com/gin-gonic/gin"

	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/log"
)

// Handler exposes the monitoring engine over HTTP.
type Handler interface {
	StartScheduler(c *gin.Context)
	StopScheduler(c *gin.Context)
	RegisterTrigger(c *gin.Context)
	ListTriggers(c *gin.Context)
	DeactivateTrigger(c *gin.Context)
	GetAlerts(c *gin.Context)
	AcknowledgeAlert(c *gin.Context)
	RecordAlertAction(c *gin.Context)
	Dashboard(c *gin.Context)
	Digest(c *gin.Context)
	ProcessAccounts(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc monitor.UseCase
}

func New(l log.Logger, uc monitor.UseCase) Handler {
	return handler{
		l:  l,
		uc: uc,
	}
}
