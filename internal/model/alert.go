package model

import "time"

// AlertSeverity grades an alert for operator triage.
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityLow      AlertSeverity = "low"
)

// Valid reports whether the severity is one of the known grades.
func (s AlertSeverity) Valid() bool {
	switch s {
	case AlertSeverityCritical, AlertSeverityHigh, AlertSeverityMedium, AlertSeverityLow:
		return true
	}
	return false
}

// AlertAction records one follow-up an operator took on an alert.
type AlertAction struct {
	Action  string    `json:"action"`
	UserID  string    `json:"user_id"`
	TakenAt time.Time `json:"taken_at"`
}

// MonitoringAlert is an operator-facing record of a fired trigger or a
// high-impact competitor event. Once acknowledged it cannot become
// unacknowledged.
type MonitoringAlert struct {
	ID    string `json:"id"`
	OrgID string `json:"org_id"`
	// TriggerID is empty when the alert was raised directly by the
	// competitor monitor.
	TriggerID        string        `json:"trigger_id,omitempty"`
	Severity         AlertSeverity `json:"severity"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	AffectedAccounts []string      `json:"affected_accounts,omitempty"`
	SuggestedActions []string      `json:"suggested_actions,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	Acknowledged     bool          `json:"acknowledged"`
	AcknowledgedBy   string        `json:"acknowledged_by,omitempty"`
	ActionsTaken     []AlertAction `json:"actions_taken,omitempty"`
}
