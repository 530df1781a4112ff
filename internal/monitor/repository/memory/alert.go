package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/paginator"
)

type alertRepo struct {
	l  log.Logger
	mu sync.RWMutex
	// byOrg holds alerts per organization, newest first.
	byOrg map[string][]*model.MonitoringAlert
	byID  map[string]*model.MonitoringAlert
}

// NewAlert returns an in-memory AlertRepository.
func NewAlert(l log.Logger) repository.AlertRepository {
	return &alertRepo{
		l:     l,
		byOrg: make(map[string][]*model.MonitoringAlert),
		byID:  make(map[string]*model.MonitoringAlert),
	}
}

func (r *alertRepo) Create(ctx context.Context, orgID string, opts repository.CreateAlertOptions) (model.MonitoringAlert, error) {
	alert := &model.MonitoringAlert{
		ID:               uuid.NewString(),
		OrgID:            orgID,
		TriggerID:        opts.TriggerID,
		Severity:         opts.Severity,
		Title:            opts.Title,
		Description:      opts.Description,
		AffectedAccounts: append([]string(nil), opts.AffectedAccounts...),
		SuggestedActions: append([]string(nil), opts.SuggestedActions...),
		CreatedAt:        time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Prepend to keep the per-org list newest first.
	r.byOrg[orgID] = append([]*model.MonitoringAlert{alert}, r.byOrg[orgID]...)
	r.byID[alert.ID] = alert

	return cloneAlert(alert), nil
}

func (r *alertRepo) Get(ctx context.Context, sc model.Scope, opts repository.GetAlertOptions) ([]model.MonitoringAlert, paginator.Paginator, error) {
	r.mu.RLock()

	alerts := make([]model.MonitoringAlert, 0, len(r.byOrg[sc.OrgID]))
	for _, a := range r.byOrg[sc.OrgID] {
		if opts.UnacknowledgedOnly && a.Acknowledged {
			continue
		}
		alerts = append(alerts, cloneAlert(a))
	}
	r.mu.RUnlock()

	page, pag := paginator.PaginateSlice(alerts, opts.PaginateQuery)
	return page, pag, nil
}

func (r *alertRepo) List(ctx context.Context, orgID string) ([]model.MonitoringAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alerts := make([]model.MonitoringAlert, 0, len(r.byOrg[orgID]))
	for _, a := range r.byOrg[orgID] {
		alerts = append(alerts, cloneAlert(a))
	}
	return alerts, nil
}

func (r *alertRepo) Acknowledge(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	// First writer wins; an acknowledged alert never flips back.
	if a.Acknowledged {
		return nil
	}
	a.Acknowledged = true
	a.AcknowledgedBy = userID
	return nil
}

func (r *alertRepo) AppendAction(ctx context.Context, id string, action model.AlertAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	if !a.Acknowledged {
		return repository.ErrNotAcknowledged
	}
	a.ActionsTaken = append(a.ActionsTaken, action)
	return nil
}

func (r *alertRepo) ListArchivable(ctx context.Context, olderThan time.Time) ([]model.MonitoringAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var alerts []model.MonitoringAlert
	for _, orgAlerts := range r.byOrg {
		for _, a := range orgAlerts {
			// Only acknowledged alerts age out; open ones stay until
			// an operator deals with them.
			if a.Acknowledged && a.CreatedAt.Before(olderThan) {
				alerts = append(alerts, cloneAlert(a))
			}
		}
	}
	return alerts, nil
}

func (r *alertRepo) Remove(ctx context.Context, orgID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)

	orgAlerts := r.byOrg[orgID]
	for i, a := range orgAlerts {
		if a.ID == id {
			r.byOrg[orgID] = append(orgAlerts[:i], orgAlerts[i+1:]...)
			break
		}
	}
	return nil
}

func cloneAlert(a *model.MonitoringAlert) model.MonitoringAlert {
	cp := *a
	cp.AffectedAccounts = append([]string(nil), a.AffectedAccounts...)
	cp.SuggestedActions = append([]string(nil), a.SuggestedActions...)
	cp.ActionsTaken = append([]model.AlertAction(nil), a.ActionsTaken...)
	return cp
}
