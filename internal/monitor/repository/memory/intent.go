package memory

import (
	"context"
	"sync"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/pkg/log"
)

type intentRepo struct {
	l  log.Logger
	mu sync.RWMutex
	// byOrg maps orgID -> accountID -> state.
	byOrg map[string]map[string]*model.IntentMonitoringData
}

// NewIntent returns an in-memory IntentRepository.
func NewIntent(l log.Logger) repository.IntentRepository {
	return &intentRepo{
		l:     l,
		byOrg: make(map[string]map[string]*model.IntentMonitoringData),
	}
}

func (r *intentRepo) Get(ctx context.Context, orgID, accountID string) (*model.IntentMonitoringData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts, ok := r.byOrg[orgID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	data, ok := accounts[accountID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return data.Clone(), nil
}

func (r *intentRepo) Save(ctx context.Context, orgID string, data *model.IntentMonitoringData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, ok := r.byOrg[orgID]
	if !ok {
		accounts = make(map[string]*model.IntentMonitoringData)
		r.byOrg[orgID] = accounts
	}
	accounts[data.AccountID] = data.Clone()
	return nil
}

func (r *intentRepo) ListRecent(ctx context.Context, orgID string, since time.Time) ([]model.IntentMonitoringData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.IntentMonitoringData
	for _, data := range r.byOrg[orgID] {
		if data.LastUpdated.Before(since) {
			continue
		}
		out = append(out, *data.Clone())
	}
	return out, nil
}

func (r *intentRepo) ListIdle(ctx context.Context, olderThan time.Time) ([]repository.IdleIntent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []repository.IdleIntent
	for orgID, accounts := range r.byOrg {
		for _, data := range accounts {
			if data.LastUpdated.Before(olderThan) {
				out = append(out, repository.IdleIntent{
					OrgID: orgID,
					Data:  *data.Clone(),
				})
			}
		}
	}
	return out, nil
}

func (r *intentRepo) Remove(ctx context.Context, orgID, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, ok := r.byOrg[orgID]
	if !ok {
		return repository.ErrNotFound
	}
	if _, ok := accounts[accountID]; !ok {
		return repository.ErrNotFound
	}
	delete(accounts, accountID)
	return nil
}
