package repository

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

// CreateTriggerOptions contains options for registering a trigger.
type CreateTriggerOptions struct {
	Name       string
	AccountID  string
	Conditions []model.Condition
	Actions    []model.Action
	Priority   model.TriggerPriority
}

// ListTriggerOptions contains filtering options for trigger queries.
type ListTriggerOptions struct {
	ActiveOnly bool
}

// CreateAlertOptions contains options for creating an alert.
type CreateAlertOptions struct {
	TriggerID        string
	Severity         model.AlertSeverity
	Title            string
	Description      string
	AffectedAccounts []string
	SuggestedActions []string
}

// GetAlertOptions contains filtering and pagination options for alert
// queries.
type GetAlertOptions struct {
	UnacknowledgedOnly bool
	PaginateQuery      paginator.PaginateQuery
}
