package http

import (
	"github.com/gin-gonic/gin"

	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/response"
)

// StartScheduler starts the periodic monitoring loop.
// @Summary Start scheduler
// @Description Arm the periodic monitoring loop. Re-arming while running restarts the timer.
// @Tags Scheduler
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/monitor/scheduler/start [post]
func (h handler) StartScheduler(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Start(ctx); err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.StartScheduler: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, gin.H{"status": "running"})
}

// StopScheduler stops the periodic monitoring loop.
// @Summary Stop scheduler
// @Description Disarm the periodic monitoring loop. An in-flight tick completes first.
// @Tags Scheduler
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/monitor/scheduler/stop [post]
func (h handler) StopScheduler(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Stop(ctx); err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.StopScheduler: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, gin.H{"status": "idle"})
}

// RegisterTrigger registers a new monitoring trigger.
// @Summary Register trigger
// @Description Register a custom trigger for the caller's organization
// @Tags Triggers
// @Accept json
// @Produce json
// @Param X-Org-ID header string true "Organization ID"
// @Param body body registerTriggerReq true "Trigger definition"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/monitor/triggers [post]
func (h handler) RegisterTrigger(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req registerTriggerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.monitor.delivery.http.RegisterTrigger: %v", err)
		response.Error(c, err, nil)
		return
	}

	ip, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	trigger, err := h.uc.RegisterTrigger(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.RegisterTrigger: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, trigger)
}

// ListTriggers lists all triggers of the caller's organization.
// @Summary List triggers
// @Tags Triggers
// @Produce json
// @Param X-Org-ID header string true "Organization ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/monitor/triggers [get]
func (h handler) ListTriggers(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	triggers, err := h.uc.ListTriggers(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.ListTriggers: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, triggers)
}

// DeactivateTrigger deactivates a trigger. Triggers are never deleted.
// @Summary Deactivate trigger
// @Tags Triggers
// @Produce json
// @Param X-Org-ID header string true "Organization ID"
// @Param id path string true "Trigger ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/monitor/triggers/{id}/deactivate [patch]
func (h handler) DeactivateTrigger(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeactivateTrigger(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.DeactivateTrigger: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, nil)
}

// GetAlerts lists alerts of the caller's organization, newest first.
// @Summary List alerts
// @Tags Alerts
// @Produce json
// @Param X-Org-ID header string true "Organization ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param unacknowledged_only query bool false "Only unacknowledged alerts"
// @Success 200 {object} response.Resp
// @Router /api/v1/monitor/alerts [get]
func (h handler) GetAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req getAlertsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.GetAlerts(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.GetAlerts: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newGetAlertsResp(out))
}

// AcknowledgeAlert marks an alert as handled by the calling user.
// @Summary Acknowledge alert
// @Tags Alerts
// @Produce json
// @Param X-Org-ID header string true "Organization ID"
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Alert ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/monitor/alerts/{id}/acknowledge [patch]
func (h handler) AcknowledgeAlert(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.AcknowledgeAlert(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.AcknowledgeAlert: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, nil)
}

// RecordAlertAction appends a follow-up action to an acknowledged alert.
// @Summary Record alert action
// @Tags Alerts
// @Accept json
// @Produce json
// @Param X-Org-ID header string true "Organization ID"
// @Param X-User-ID header string true "User ID"
// @Param id path string true "Alert ID"
// @Param body body recordAlertActionReq true "Action taken"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/monitor/alerts/{id}/actions [post]
func (h handler) RecordAlertAction(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req recordAlertActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	err = h.uc.RecordAlertAction(ctx, sc, monitor.RecordAlertActionInput{
		AlertID: c.Param("id"),
		Action:  req.Action,
	})
	if err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.RecordAlertAction: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, nil)
}

// Dashboard returns the operator snapshot for the caller's organization.
// @Summary Dashboard snapshot
// @Tags Dashboard
// @Produce json
// @Param X-Org-ID header string true "Organization ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/monitor/dashboard [get]
func (h handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Dashboard(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.Dashboard: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newDashboardResp(out))
}

// Digest sends the 24h monitoring digest for the caller's organization.
// @Summary Send digest
// @Tags Dashboard
// @Produce json
// @Param X-Org-ID header string true "Organization ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/monitor/digest [post]
func (h handler) Digest(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Digest(ctx, sc); err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.Digest: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, nil)
}

// ProcessAccounts runs the one-click batch workflow over a list of accounts.
// @Summary Process account list
// @Description Score, partition, and seed monitoring for a list of accounts
// @Tags Batch
// @Accept json
// @Produce json
// @Param X-Org-ID header string true "Organization ID"
// @Param body body processAccountsReq true "Accounts to process"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/monitor/accounts/process [post]
func (h handler) ProcessAccounts(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req processAccountsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ProcessAccountList(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.ProcessAccounts: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	response.OK(c, newProcessAccountsResp(out))
}
