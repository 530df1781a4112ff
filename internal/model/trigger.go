package model

import "time"

// TriggerPriority is the priority tier of a trigger.
type TriggerPriority string

const (
	TriggerPriorityCritical TriggerPriority = "critical"
	TriggerPriorityHigh     TriggerPriority = "high"
	TriggerPriorityMedium   TriggerPriority = "medium"
	TriggerPriorityLow      TriggerPriority = "low"
)

// Valid reports whether the priority is one of the known tiers.
func (p TriggerPriority) Valid() bool {
	switch p {
	case TriggerPriorityCritical, TriggerPriorityHigh, TriggerPriorityMedium, TriggerPriorityLow:
		return true
	}
	return false
}

// ConditionOperator is the comparison operator of a trigger condition.
type ConditionOperator string

const (
	OperatorGreaterThan ConditionOperator = "greater_than"
	OperatorLessThan    ConditionOperator = "less_than"
	OperatorEquals      ConditionOperator = "equals"
	// OperatorContains is reserved for future string matching semantics.
	OperatorContains    ConditionOperator = "contains"
	OperatorIncreasesBy ConditionOperator = "increases_by"
	OperatorDecreasesBy ConditionOperator = "decreases_by"
)

// Valid reports whether the operator is one of the known operators.
func (o ConditionOperator) Valid() bool {
	switch o {
	case OperatorGreaterThan, OperatorLessThan, OperatorEquals,
		OperatorContains, OperatorIncreasesBy, OperatorDecreasesBy:
		return true
	}
	return false
}

// ActionType identifies the side effect dispatched when a trigger fires.
type ActionType string

const (
	ActionGenerateContent ActionType = "generate_content"
	ActionNotifyTeam      ActionType = "notify_team"
	ActionUpdatePriority  ActionType = "update_priority"
	ActionCreateTask      ActionType = "create_task"
	ActionTriggerSequence ActionType = "trigger_sequence"
	ActionABMAlert        ActionType = "abm_alert"
)

// Valid reports whether the action type is one of the known types.
func (a ActionType) Valid() bool {
	switch a {
	case ActionGenerateContent, ActionNotifyTeam, ActionUpdatePriority,
		ActionCreateTask, ActionTriggerSequence, ActionABMAlert:
		return true
	}
	return false
}

// Condition is one comparison clause of a trigger. All conditions in a
// trigger are AND-combined. Immutable once attached.
type Condition struct {
	Field     string            `json:"field"`
	Operator  ConditionOperator `json:"operator"`
	Threshold float64           `json:"threshold"`
	// Window is the optional lookback window used by increases_by and
	// decreases_by. Zero means no window.
	Window time.Duration `json:"window,omitempty"`
}

// Action is one side-effecting operation of a trigger. The config map is
// opaque to everything except the handler for its type.
type Action struct {
	Type        ActionType        `json:"type"`
	Config      map[string]string `json:"config,omitempty"`
	TargetUsers []string          `json:"target_users,omitempty"`
}

// Trigger is a named monitoring rule evaluated each tick for an organization.
type Trigger struct {
	ID    string `json:"id"`
	OrgID string `json:"org_id"`
	Name  string `json:"name"`
	// AccountID restricts the trigger to a single account when set.
	// Empty means the trigger applies to every tracked account.
	AccountID     string          `json:"account_id,omitempty"`
	Conditions    []Condition     `json:"conditions"`
	Actions       []Action        `json:"actions"`
	Priority      TriggerPriority `json:"priority"`
	Active        bool            `json:"active"`
	LastTriggered *time.Time      `json:"last_triggered,omitempty"`
	TriggerCount  int             `json:"trigger_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AppliesTo reports whether the trigger should be evaluated against the
// given account.
func (t Trigger) AppliesTo(accountID string) bool {
	return t.AccountID == "" || t.AccountID == accountID
}
