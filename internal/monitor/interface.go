package monitor

import (
	"context"

	"monitor-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Scheduler lifecycle.
	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	// Trigger management.
	RegisterTrigger(ctx context.Context, sc model.Scope, ip RegisterTriggerInput) (model.Trigger, error)
	ListTriggers(ctx context.Context, sc model.Scope) ([]model.Trigger, error)
	DeactivateTrigger(ctx context.Context, sc model.Scope, id string) error

	// Alert workflow.
	GetAlerts(ctx context.Context, sc model.Scope, ip GetAlertsInput) (GetAlertsOutput, error)
	AcknowledgeAlert(ctx context.Context, sc model.Scope, id string) error
	RecordAlertAction(ctx context.Context, sc model.Scope, ip RecordAlertActionInput) error

	// Reporting.
	Dashboard(ctx context.Context, sc model.Scope) (DashboardOutput, error)
	Digest(ctx context.Context, sc model.Scope) error

	// One-click batch workflow.
	ProcessAccountList(ctx context.Context, sc model.Scope, ip ProcessAccountListInput) (ProcessAccountListOutput, error)
}

// AlertPublisher pushes freshly created alerts to live subscribers.
// Implemented by the websocket alert stream; a nil publisher disables
// live push without affecting alert persistence.
type AlertPublisher interface {
	PublishAlert(orgID string, alert model.MonitoringAlert)
}
