package usecase

import (
	"context"
	"fmt"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
)

// executeActions runs every action of a fired trigger for one account.
// Actions are independent and best effort: a failing action is logged
// and its siblings still run.
func (uc *usecase) executeActions(ctx context.Context, trigger model.Trigger, account model.Account, state *model.IntentMonitoringData) {
	for _, action := range trigger.Actions {
		uc.executeAction(ctx, trigger, action, account, state)
	}
}

func (uc *usecase) executeAction(ctx context.Context, trigger model.Trigger, action model.Action, account model.Account, state *model.IntentMonitoringData) {
	orgID := trigger.OrgID

	switch action.Type {
	case model.ActionNotifyTeam:
		message := action.Config["message"]
		if message == "" {
			message = fmt.Sprintf("Trigger %q fired for account %s", trigger.Name, account.Name)
		}
		// Fire and forget; delivery latency must not hold up the tick.
		go func() {
			nctx, cancel := context.WithTimeout(context.Background(), uc.cfg.NotifyTimeout)
			defer cancel()
			if err := uc.collab.Notifier.Notify(nctx, orgID, message, account); err != nil {
				uc.l.Errorf(nctx, "internal.monitor.usecase.executeAction: notify_team: %v", err)
			}
		}()

	case model.ActionUpdatePriority:
		priority := action.Config["priority"]
		if err := uc.collab.Directory.UpdatePriority(ctx, orgID, account, priority); err != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.executeAction: update_priority: %v", err)
		}

	case model.ActionGenerateContent:
		approach := action.Config["approach"]
		// Content generation is the slow path; run it off-tick with its
		// own deadline.
		go func() {
			gctx, cancel := context.WithTimeout(context.Background(), uc.cfg.ContentTimeout)
			defer cancel()
			if _, err := uc.collab.Content.Generate(gctx, account, approach); err != nil {
				uc.l.Errorf(gctx, "internal.monitor.usecase.executeAction: generate_content: %v", err)
				return
			}
			uc.l.Infof(gctx, "internal.monitor.usecase.executeAction: content generated for account %s", account.ID)
		}()

	case model.ActionCreateTask:
		title := action.Config["title"]
		if title == "" {
			title = fmt.Sprintf("Follow up on %s (%s)", account.Name, trigger.Name)
		}
		if err := uc.collab.Directory.CreateTask(ctx, orgID, account, title, action.TargetUsers); err != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.executeAction: create_task: %v", err)
		}

	case model.ActionTriggerSequence:
		sequence := action.Config["sequence"]
		if err := uc.collab.Sequencer.StartSequence(ctx, account, sequence); err != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.executeAction: trigger_sequence: %v", err)
		}

	case model.ActionABMAlert:
		uc.raiseTriggerAlert(ctx, trigger, action, account, state)

	default:
		// Unknown action types are skipped, never fatal.
		uc.l.Warnf(ctx, "internal.monitor.usecase.executeAction: unknown action type %q", action.Type)
	}
}

func (uc *usecase) raiseTriggerAlert(ctx context.Context, trigger model.Trigger, action model.Action, account model.Account, state *model.IntentMonitoringData) {
	severity := model.AlertSeverity(action.Config["priority"])
	if !severity.Valid() {
		severity = severityForPriority(trigger.Priority)
	}

	description := fmt.Sprintf("Account %s matched trigger %q (intent score %.1f, velocity %+.1f)",
		account.Name, trigger.Name, state.TotalScore(), state.Velocity)

	uc.createAlert(ctx, trigger.OrgID, repository.CreateAlertOptions{
		TriggerID:        trigger.ID,
		Severity:         severity,
		Title:            fmt.Sprintf("High-Intent Account: %s", account.Name),
		Description:      description,
		AffectedAccounts: []string{account.ID},
		SuggestedActions: []string{
			"Review recent signal activity",
			"Reach out while intent is warm",
		},
	})
}

// createAlert persists an alert and pushes it to live subscribers.
func (uc *usecase) createAlert(ctx context.Context, orgID string, opts repository.CreateAlertOptions) {
	alert, err := uc.repo.Alert.Create(ctx, orgID, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.createAlert: %v", err)
		return
	}
	if uc.pub != nil {
		uc.pub.PublishAlert(orgID, alert)
	}
}

func severityForPriority(p model.TriggerPriority) model.AlertSeverity {
	switch p {
	case model.TriggerPriorityCritical:
		return model.AlertSeverityCritical
	case model.TriggerPriorityHigh:
		return model.AlertSeverityHigh
	case model.TriggerPriorityLow:
		return model.AlertSeverityLow
	default:
		return model.AlertSeverityMedium
	}
}
