package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/pkg/log"
)

type triggerRepo struct {
	l  log.Logger
	mu sync.RWMutex
	// byOrg holds trigger pointers per organization in registration order.
	byOrg map[string][]*model.Trigger
	byID  map[string]*model.Trigger
}

// NewTrigger returns an in-memory TriggerRepository.
func NewTrigger(l log.Logger) repository.TriggerRepository {
	return &triggerRepo{
		l:     l,
		byOrg: make(map[string][]*model.Trigger),
		byID:  make(map[string]*model.Trigger),
	}
}

func (r *triggerRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateTriggerOptions) (model.Trigger, error) {
	trigger := &model.Trigger{
		ID:         uuid.NewString(),
		OrgID:      sc.OrgID,
		Name:       opts.Name,
		AccountID:  opts.AccountID,
		Conditions: append([]model.Condition(nil), opts.Conditions...),
		Actions:    append([]model.Action(nil), opts.Actions...),
		Priority:   opts.Priority,
		Active:     true,
		CreatedAt:  time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byOrg[sc.OrgID] = append(r.byOrg[sc.OrgID], trigger)
	r.byID[trigger.ID] = trigger

	return cloneTrigger(trigger), nil
}

func (r *triggerRepo) List(ctx context.Context, sc model.Scope, opts repository.ListTriggerOptions) ([]model.Trigger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	triggers := make([]model.Trigger, 0, len(r.byOrg[sc.OrgID]))
	for _, t := range r.byOrg[sc.OrgID] {
		if opts.ActiveOnly && !t.Active {
			continue
		}
		triggers = append(triggers, cloneTrigger(t))
	}
	return triggers, nil
}

func (r *triggerRepo) ListActive(ctx context.Context, orgID string) ([]model.Trigger, error) {
	return r.List(ctx, model.Scope{OrgID: orgID}, repository.ListTriggerOptions{ActiveOnly: true})
}

func (r *triggerRepo) Deactivate(ctx context.Context, sc model.Scope, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok || t.OrgID != sc.OrgID {
		return repository.ErrNotFound
	}
	t.Active = false
	return nil
}

func (r *triggerRepo) RecordFired(ctx context.Context, orgID, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.byID[id]
	if !ok || t.OrgID != orgID {
		return repository.ErrNotFound
	}
	t.TriggerCount++
	fired := at
	t.LastTriggered = &fired
	return nil
}

func cloneTrigger(t *model.Trigger) model.Trigger {
	cp := *t
	cp.Conditions = append([]model.Condition(nil), t.Conditions...)
	cp.Actions = append([]model.Action(nil), t.Actions...)
	if t.LastTriggered != nil {
		fired := *t.LastTriggered
		cp.LastTriggered = &fired
	}
	return cp
}
