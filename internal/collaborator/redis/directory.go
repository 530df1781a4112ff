package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"monitor-srv/internal/collaborator"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
	pkgRedis "monitor-srv/pkg/redis"
)

const (
	orgSetKey            = "monitor:orgs"
	accountHashPattern   = "monitor:accounts:%s"
	competitorSetPattern = "monitor:competitors:%s"
	priorityKeyPattern   = "monitor:priority:%s:%s"
	taskQueuePattern     = "monitor:tasks:%s"
)

type directory struct {
	l     log.Logger
	redis *pkgRedis.Client
}

// NewDirectory returns an AccountDirectory backed by the Redis keys the
// CRM sync job maintains.
func NewDirectory(l log.Logger, redis *pkgRedis.Client) collaborator.AccountDirectory {
	return &directory{
		l:     l,
		redis: redis,
	}
}

func (d *directory) Organizations(ctx context.Context) ([]string, error) {
	orgs, err := d.redis.GetClient().SMembers(ctx, orgSetKey).Result()
	if err != nil {
		d.l.Errorf(ctx, "internal.collaborator.redis.Organizations: %v", err)
		return nil, err
	}
	return orgs, nil
}

func (d *directory) TrackedAccounts(ctx context.Context, orgID string) ([]model.Account, error) {
	key := fmt.Sprintf(accountHashPattern, orgID)
	raw, err := d.redis.GetClient().HGetAll(ctx, key).Result()
	if err != nil {
		d.l.Errorf(ctx, "internal.collaborator.redis.TrackedAccounts: %v", err)
		return nil, err
	}

	accounts := make([]model.Account, 0, len(raw))
	for id, val := range raw {
		var acc model.Account
		if err := json.Unmarshal([]byte(val), &acc); err != nil {
			d.l.Warnf(ctx, "internal.collaborator.redis.TrackedAccounts: bad record for %s: %v", id, err)
			continue
		}
		if acc.ID == "" {
			acc.ID = id
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (d *directory) TrackedCompetitors(ctx context.Context, orgID string) ([]string, error) {
	key := fmt.Sprintf(competitorSetPattern, orgID)
	competitors, err := d.redis.GetClient().SMembers(ctx, key).Result()
	if err != nil {
		d.l.Errorf(ctx, "internal.collaborator.redis.TrackedCompetitors: %v", err)
		return nil, err
	}
	return competitors, nil
}

func (d *directory) UpdatePriority(ctx context.Context, orgID string, account model.Account, priority string) error {
	key := fmt.Sprintf(priorityKeyPattern, orgID, account.ID)
	if err := d.redis.GetClient().Set(ctx, key, priority, 0).Err(); err != nil {
		d.l.Errorf(ctx, "internal.collaborator.redis.UpdatePriority: %v", err)
		return err
	}
	return nil
}

type taskPayload struct {
	OrgID     string    `json:"org_id"`
	AccountID string    `json:"account_id"`
	Account   string    `json:"account"`
	Title     string    `json:"title"`
	Assignees []string  `json:"assignees,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *directory) CreateTask(ctx context.Context, orgID string, account model.Account, title string, assignees []string) error {
	payload, err := json.Marshal(taskPayload{
		OrgID:     orgID,
		AccountID: account.ID,
		Account:   account.Name,
		Title:     title,
		Assignees: assignees,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	key := fmt.Sprintf(taskQueuePattern, orgID)
	if err := d.redis.GetClient().LPush(ctx, key, payload).Err(); err != nil {
		d.l.Errorf(ctx, "internal.collaborator.redis.CreateTask: %v", err)
		return err
	}
	return nil
}
