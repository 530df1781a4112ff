package usecase

import (
	"context"
	"errors"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/internal/monitor/repository"
)

// RegisterTrigger validates and stores a new trigger. Triggers are never
// deleted afterwards, only deactivated.
func (uc *usecase) RegisterTrigger(ctx context.Context, sc model.Scope, ip monitor.RegisterTriggerInput) (model.Trigger, error) {
	if ip.Name == "" {
		return model.Trigger{}, monitor.ErrNameRequired
	}
	if len(ip.Conditions) == 0 {
		return model.Trigger{}, monitor.ErrInvalidCondition
	}
	for _, cond := range ip.Conditions {
		if cond.Field == "" || !cond.Operator.Valid() {
			return model.Trigger{}, monitor.ErrInvalidCondition
		}
	}
	for _, action := range ip.Actions {
		if !action.Type.Valid() {
			return model.Trigger{}, monitor.ErrInvalidAction
		}
	}

	priority := ip.Priority
	if priority == "" {
		priority = model.TriggerPriorityMedium
	}
	if !priority.Valid() {
		return model.Trigger{}, monitor.ErrInvalidPriority
	}

	trigger, err := uc.repo.Trigger.Create(ctx, sc, repository.CreateTriggerOptions{
		Name:       ip.Name,
		AccountID:  ip.AccountID,
		Conditions: ip.Conditions,
		Actions:    ip.Actions,
		Priority:   priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.RegisterTrigger: %v", err)
		return model.Trigger{}, err
	}
	return trigger, nil
}

func (uc *usecase) ListTriggers(ctx context.Context, sc model.Scope) ([]model.Trigger, error) {
	triggers, err := uc.repo.Trigger.List(ctx, sc, repository.ListTriggerOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.ListTriggers: %v", err)
		return nil, err
	}
	return triggers, nil
}

func (uc *usecase) DeactivateTrigger(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Trigger.Deactivate(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return monitor.ErrTriggerNotFound
		}
		uc.l.Errorf(ctx, "internal.monitor.usecase.DeactivateTrigger: %v", err)
		return err
	}
	return nil
}
