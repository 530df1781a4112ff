package http

import (
	"net/http"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	pkgErrors "monitor-srv/pkg/errors"
	"monitor-srv/pkg/paginator"
)

var errInvalidWindow = pkgErrors.NewHTTPError(40007, "invalid condition window", http.StatusBadRequest)

type conditionReq struct {
	Field     string  `json:"field" binding:"required"`
	Operator  string  `json:"operator" binding:"required"`
	Threshold float64 `json:"threshold"`
	Window    string  `json:"window,omitempty"`
}

type actionReq struct {
	Type        string            `json:"type" binding:"required"`
	Config      map[string]string `json:"config,omitempty"`
	TargetUsers []string          `json:"target_users,omitempty"`
}

type registerTriggerReq struct {
	Name       string         `json:"name" binding:"required"`
	AccountID  string         `json:"account_id,omitempty"`
	Conditions []conditionReq `json:"conditions" binding:"required"`
	Actions    []actionReq    `json:"actions,omitempty"`
	Priority   string         `json:"priority,omitempty"`
}

func (req registerTriggerReq) toInput() (monitor.RegisterTriggerInput, error) {
	conditions := make([]model.Condition, 0, len(req.Conditions))
	for _, cr := range req.Conditions {
		var window time.Duration
		if cr.Window != "" {
			parsed, err := time.ParseDuration(cr.Window)
			if err != nil || parsed < 0 {
				return monitor.RegisterTriggerInput{}, errInvalidWindow
			}
			window = parsed
		}
		conditions = append(conditions, model.Condition{
			Field:     cr.Field,
			Operator:  model.ConditionOperator(cr.Operator),
			Threshold: cr.Threshold,
			Window:    window,
		})
	}

	actions := make([]model.Action, 0, len(req.Actions))
	for _, ar := range req.Actions {
		actions = append(actions, model.Action{
			Type:        model.ActionType(ar.Type),
			Config:      ar.Config,
			TargetUsers: ar.TargetUsers,
		})
	}

	return monitor.RegisterTriggerInput{
		Name:       req.Name,
		AccountID:  req.AccountID,
		Conditions: conditions,
		Actions:    actions,
		Priority:   model.TriggerPriority(req.Priority),
	}, nil
}

type getAlertsReq struct {
	Page               int   `form:"page"`
	Limit              int64 `form:"limit"`
	UnacknowledgedOnly bool  `form:"unacknowledged_only"`
}

func (req getAlertsReq) toInput() monitor.GetAlertsInput {
	return monitor.GetAlertsInput{
		Filter: monitor.AlertFilter{
			UnacknowledgedOnly: req.UnacknowledgedOnly,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}
}

type recordAlertActionReq struct {
	Action string `json:"action" binding:"required"`
}

type accountReq struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Domain   string `json:"domain,omitempty"`
	Industry string `json:"industry,omitempty"`
}

type processAccountsReq struct {
	Accounts []accountReq `json:"accounts" binding:"required"`
}

func (req processAccountsReq) toInput() monitor.ProcessAccountListInput {
	accounts := make([]model.Account, 0, len(req.Accounts))
	for _, ar := range req.Accounts {
		accounts = append(accounts, model.Account{
			ID:       ar.ID,
			Name:     ar.Name,
			Domain:   ar.Domain,
			Industry: ar.Industry,
		})
	}
	return monitor.ProcessAccountListInput{Accounts: accounts}
}

type getAlertsResp struct {
	Alerts    []model.MonitoringAlert     `json:"alerts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetAlertsResp(o monitor.GetAlertsOutput) getAlertsResp {
	return getAlertsResp{
		Alerts:    o.Alerts,
		Paginator: o.Paginator.ToResponse(),
	}
}

type triggerStatResp struct {
	TriggerID     string     `json:"trigger_id"`
	Name          string     `json:"name"`
	FireCount     int        `json:"fire_count"`
	LastTriggered *time.Time `json:"last_triggered,omitempty"`
}

type accountHealthResp struct {
	AccountID string  `json:"account_id"`
	Score     float64 `json:"score"`
	Trend     string  `json:"trend"`
	Velocity  float64 `json:"velocity"`
}

type dashboardResp struct {
	UnacknowledgedAlerts []model.MonitoringAlert          `json:"unacknowledged_alerts"`
	RecentIntent         []model.IntentMonitoringData     `json:"recent_intent"`
	RecentActivities     []model.CompetitorActivity       `json:"recent_activities"`
	TriggerStats         []triggerStatResp                `json:"trigger_stats"`
	AccountHealth        []accountHealthResp              `json:"account_health"`
	CategoryTotals       map[model.SignalCategory]float64 `json:"category_totals"`
	TrackedAccounts      int                              `json:"tracked_accounts"`
}

func newDashboardResp(o monitor.DashboardOutput) dashboardResp {
	stats := make([]triggerStatResp, 0, len(o.TriggerStats))
	for _, s := range o.TriggerStats {
		stats = append(stats, triggerStatResp{
			TriggerID:     s.TriggerID,
			Name:          s.Name,
			FireCount:     s.FireCount,
			LastTriggered: s.LastTriggered,
		})
	}

	health := make([]accountHealthResp, 0, len(o.AccountHealth))
	for _, h := range o.AccountHealth {
		health = append(health, accountHealthResp{
			AccountID: h.AccountID,
			Score:     h.Score,
			Trend:     string(h.Trend),
			Velocity:  h.Velocity,
		})
	}

	return dashboardResp{
		UnacknowledgedAlerts: o.UnacknowledgedAlerts,
		RecentIntent:         o.RecentIntent,
		RecentActivities:     o.RecentActivities,
		TriggerStats:         stats,
		AccountHealth:        health,
		CategoryTotals:       o.CategoryTotals,
		TrackedAccounts:      o.TrackedAccounts,
	}
}

type accountPriorityResp struct {
	Account       model.Account `json:"account"`
	PriorityScore float64       `json:"priority_score"`
	ResearchScore float64       `json:"research_score"`
	IntentScore   float64       `json:"intent_score"`
	Readiness     string        `json:"readiness,omitempty"`
}

type suggestionResp struct {
	AccountID string `json:"account_id"`
	Approach  string `json:"approach"`
	Reasoning string `json:"reasoning"`
}

type processAccountsResp struct {
	HighPriority   []accountPriorityResp `json:"high_priority"`
	ReadyToSend    []accountPriorityResp `json:"ready_to_send"`
	NeedsNurturing []accountPriorityResp `json:"needs_nurturing"`
	Suggestions    []suggestionResp      `json:"suggestions"`
}

func newProcessAccountsResp(o monitor.ProcessAccountListOutput) processAccountsResp {
	convert := func(in []monitor.AccountPriority) []accountPriorityResp {
		out := make([]accountPriorityResp, 0, len(in))
		for _, ap := range in {
			out = append(out, accountPriorityResp{
				Account:       ap.Account,
				PriorityScore: ap.PriorityScore,
				ResearchScore: ap.ResearchScore,
				IntentScore:   ap.IntentScore,
				Readiness:     ap.Readiness,
			})
		}
		return out
	}

	suggestions := make([]suggestionResp, 0, len(o.Suggestions))
	for _, s := range o.Suggestions {
		suggestions = append(suggestions, suggestionResp{
			AccountID: s.AccountID,
			Approach:  s.Approach,
			Reasoning: s.Reasoning,
		})
	}

	return processAccountsResp{
		HighPriority:   convert(o.HighPriority),
		ReadyToSend:    convert(o.ReadyToSend),
		NeedsNurturing: convert(o.NeedsNurturing),
		Suggestions:    suggestions,
	}
}
