package repository

import (
	"context"
	"errors"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNotAcknowledged is returned when an action is appended to an
	// alert that has not been acknowledged yet.
	ErrNotAcknowledged = errors.New("alert not acknowledged")
)

//go:generate mockery --name TriggerRepository
type TriggerRepository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateTriggerOptions) (model.Trigger, error)
	List(ctx context.Context, sc model.Scope, opts ListTriggerOptions) ([]model.Trigger, error)
	ListActive(ctx context.Context, orgID string) ([]model.Trigger, error)
	Deactivate(ctx context.Context, sc model.Scope, id string) error
	RecordFired(ctx context.Context, orgID, id string, at time.Time) error
}

//go:generate mockery --name AlertRepository
type AlertRepository interface {
	Create(ctx context.Context, orgID string, opts CreateAlertOptions) (model.MonitoringAlert, error)
	Get(ctx context.Context, sc model.Scope, opts GetAlertOptions) ([]model.MonitoringAlert, paginator.Paginator, error)
	List(ctx context.Context, orgID string) ([]model.MonitoringAlert, error)
	Acknowledge(ctx context.Context, id, userID string) error
	AppendAction(ctx context.Context, id string, action model.AlertAction) error
	ListArchivable(ctx context.Context, olderThan time.Time) ([]model.MonitoringAlert, error)
	Remove(ctx context.Context, orgID, id string) error
}

//go:generate mockery --name IntentRepository
type IntentRepository interface {
	Get(ctx context.Context, orgID, accountID string) (*model.IntentMonitoringData, error)
	Save(ctx context.Context, orgID string, data *model.IntentMonitoringData) error
	ListRecent(ctx context.Context, orgID string, since time.Time) ([]model.IntentMonitoringData, error)
	ListIdle(ctx context.Context, olderThan time.Time) ([]IdleIntent, error)
	Remove(ctx context.Context, orgID, accountID string) error
}

// ActivityRepository is the append-only competitor activity log.
type ActivityRepository interface {
	Append(ctx context.Context, orgID string, activities []model.CompetitorActivity) error
	ListRecent(ctx context.Context, orgID string, since time.Time) ([]model.CompetitorActivity, error)
}

// IdleIntent pairs idle account state with its owning organization so the
// retention sweeper can archive it.
type IdleIntent struct {
	OrgID string
	Data  model.IntentMonitoringData
}
