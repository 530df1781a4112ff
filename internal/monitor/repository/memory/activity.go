package memory

import (
	"context"
	"sync"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/pkg/log"
)

type activityRepo struct {
	l  log.Logger
	mu sync.RWMutex
	// byOrg holds the append-only activity log per organization.
	byOrg map[string][]model.CompetitorActivity
}

// NewActivity returns an in-memory ActivityRepository.
func NewActivity(l log.Logger) repository.ActivityRepository {
	return &activityRepo{
		l:     l,
		byOrg: make(map[string][]model.CompetitorActivity),
	}
}

func (r *activityRepo) Append(ctx context.Context, orgID string, activities []model.CompetitorActivity) error {
	if len(activities) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byOrg[orgID] = append(r.byOrg[orgID], activities...)
	return nil
}

func (r *activityRepo) ListRecent(ctx context.Context, orgID string, since time.Time) ([]model.CompetitorActivity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.CompetitorActivity
	for _, a := range r.byOrg[orgID] {
		if a.DetectedAt.Before(since) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
