package monitor

import (
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

type RegisterTriggerInput struct {
	Name       string
	AccountID  string
	Conditions []model.Condition
	Actions    []model.Action
	Priority   model.TriggerPriority
}

type GetAlertsInput struct {
	Filter        AlertFilter
	PaginateQuery paginator.PaginateQuery
}

type AlertFilter struct {
	UnacknowledgedOnly bool
}

type GetAlertsOutput struct {
	Alerts    []model.MonitoringAlert
	Paginator paginator.Paginator
}

type RecordAlertActionInput struct {
	AlertID string
	Action  string
}

// TriggerStat is the per-trigger slice of the dashboard.
type TriggerStat struct {
	TriggerID     string
	Name          string
	FireCount     int
	LastTriggered *time.Time
}

// AccountHealth is the per-account slice of the dashboard.
type AccountHealth struct {
	AccountID string
	Score     float64
	Trend     model.Trend
	Velocity  float64
}

type DashboardOutput struct {
	UnacknowledgedAlerts []model.MonitoringAlert
	RecentIntent         []model.IntentMonitoringData
	RecentActivities     []model.CompetitorActivity
	TriggerStats         []TriggerStat
	AccountHealth        []AccountHealth
	CategoryTotals       map[model.SignalCategory]float64
	TrackedAccounts      int
}

type ProcessAccountListInput struct {
	Accounts []model.Account
}

// AccountPriority is one scored account of the batch workflow output.
type AccountPriority struct {
	Account       model.Account
	PriorityScore float64
	ResearchScore float64
	IntentScore   float64
	Readiness     string
}

// SequenceSuggestion is the recommended outreach for a ready-to-send account.
type SequenceSuggestion struct {
	AccountID string
	Approach  string
	Reasoning string
}

type ProcessAccountListOutput struct {
	HighPriority   []AccountPriority
	ReadyToSend    []AccountPriority
	NeedsNurturing []AccountPriority
	Suggestions    []SequenceSuggestion
}
