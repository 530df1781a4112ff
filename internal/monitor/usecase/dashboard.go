package usecase

import (
	"context"
	"sort"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/pkg/paginator"
)

const (
	dashboardIntentWindow   = 24 * time.Hour
	dashboardActivityWindow = 7 * 24 * time.Hour
	maxHealthScore          = 100.0
)

// Dashboard assembles the operator snapshot: open alerts, recent intent
// movement, competitor activity, trigger fire counts, and per-account
// health.
func (uc *usecase) Dashboard(ctx context.Context, sc model.Scope) (monitor.DashboardOutput, error) {
	now := uc.clock()

	alerts, _, err := uc.repo.Alert.Get(ctx, sc, repository.GetAlertOptions{
		UnacknowledgedOnly: true,
		PaginateQuery:      paginator.PaginateQuery{Page: 1, Limit: paginator.MaxLimit},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.Dashboard: %v", err)
		return monitor.DashboardOutput{}, err
	}

	intents, err := uc.repo.Intent.ListRecent(ctx, sc.OrgID, now.Add(-dashboardIntentWindow))
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.Dashboard: %v", err)
		return monitor.DashboardOutput{}, err
	}
	sort.Slice(intents, func(i, j int) bool {
		return intents[i].TotalScore() > intents[j].TotalScore()
	})

	activities, err := uc.repo.Activity.ListRecent(ctx, sc.OrgID, now.Add(-dashboardActivityWindow))
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.Dashboard: %v", err)
		return monitor.DashboardOutput{}, err
	}

	triggers, err := uc.repo.Trigger.List(ctx, sc, repository.ListTriggerOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.Dashboard: %v", err)
		return monitor.DashboardOutput{}, err
	}

	stats := make([]monitor.TriggerStat, 0, len(triggers))
	for _, t := range triggers {
		stats = append(stats, monitor.TriggerStat{
			TriggerID:     t.ID,
			Name:          t.Name,
			FireCount:     t.TriggerCount,
			LastTriggered: t.LastTriggered,
		})
	}

	health := make([]monitor.AccountHealth, 0, len(intents))
	totals := make(map[model.SignalCategory]float64)
	for _, data := range intents {
		score := data.TotalScore()
		if score > maxHealthScore {
			score = maxHealthScore
		}
		health = append(health, monitor.AccountHealth{
			AccountID: data.AccountID,
			Score:     score,
			Trend:     data.Trend,
			Velocity:  data.Velocity,
		})
		for category, value := range data.Signals {
			totals[category] += value
		}
	}

	return monitor.DashboardOutput{
		UnacknowledgedAlerts: alerts,
		RecentIntent:         intents,
		RecentActivities:     activities,
		TriggerStats:         stats,
		AccountHealth:        health,
		CategoryTotals:       totals,
		TrackedAccounts:      len(intents),
	}, nil
}
