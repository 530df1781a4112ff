// Package memory provides the in-process implementations of the monitor
// repositories. All stores are mutex-guarded maps; callers only ever see
// copies of stored records, never the maps themselves.
package memory

import (
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/pkg/log"
)

// Repositories bundles the in-memory stores sharing one logger.
type Repositories struct {
	Trigger  repository.TriggerRepository
	Alert    repository.AlertRepository
	Intent   repository.IntentRepository
	Activity repository.ActivityRepository
}

// New constructs the full in-memory store set.
func New(l log.Logger) Repositories {
	return Repositories{
		Trigger:  NewTrigger(l),
		Alert:    NewAlert(l),
		Intent:   NewIntent(l),
		Activity: NewActivity(l),
	}
}
