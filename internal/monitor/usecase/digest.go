package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
)

const digestTopAccounts = 5

// maybeSendDigests sends the daily digest for every organization when
// the digest interval has elapsed. Called at the end of each tick.
func (uc *usecase) maybeSendDigests(ctx context.Context, orgs []string) {
	if !uc.cfg.DigestEnabled {
		return
	}

	uc.digestMu.Lock()
	due := uc.clock().Sub(uc.lastDigest) >= uc.cfg.DigestInterval
	if due {
		uc.lastDigest = uc.clock()
	}
	uc.digestMu.Unlock()
	if !due {
		return
	}

	for _, orgID := range orgs {
		if err := uc.sendDigest(ctx, orgID); err != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.maybeSendDigests: %v", err)
		}
	}
}

// Digest sends the 24h summary for the caller's organization on demand.
func (uc *usecase) Digest(ctx context.Context, sc model.Scope) error {
	return uc.sendDigest(ctx, sc.OrgID)
}

func (uc *usecase) sendDigest(ctx context.Context, orgID string) error {
	since := uc.clock().Add(-24 * time.Hour)

	alerts, err := uc.repo.Alert.List(ctx, orgID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.sendDigest: %v", err)
		return err
	}
	bySeverity := make(map[model.AlertSeverity]int)
	var newAlerts int
	for _, a := range alerts {
		if a.CreatedAt.Before(since) {
			continue
		}
		newAlerts++
		bySeverity[a.Severity]++
	}

	intents, err := uc.repo.Intent.ListRecent(ctx, orgID, since)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.sendDigest: %v", err)
		return err
	}
	sort.Slice(intents, func(i, j int) bool {
		return intents[i].Velocity > intents[j].Velocity
	})
	if len(intents) > digestTopAccounts {
		intents = intents[:digestTopAccounts]
	}

	triggers, err := uc.repo.Trigger.List(ctx, model.Scope{OrgID: orgID}, repository.ListTriggerOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.sendDigest: %v", err)
		return err
	}
	var totalFires int
	for _, t := range triggers {
		totalFires += t.TriggerCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Daily monitoring digest\n")
	fmt.Fprintf(&b, "New alerts (24h): %d", newAlerts)
	if newAlerts > 0 {
		parts := make([]string, 0, len(bySeverity))
		for _, sev := range []model.AlertSeverity{
			model.AlertSeverityCritical, model.AlertSeverityHigh,
			model.AlertSeverityMedium, model.AlertSeverityLow,
		} {
			if n := bySeverity[sev]; n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, sev))
			}
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, "\nTriggers configured: %d, lifetime fires: %d\n", len(triggers), totalFires)
	if len(intents) > 0 {
		fmt.Fprintf(&b, "Top accounts by velocity:\n")
		for _, data := range intents {
			fmt.Fprintf(&b, "  %s: score %.1f, velocity %+.1f (%s)\n",
				data.AccountID, data.TotalScore(), data.Velocity, data.Trend)
		}
	}

	if err := uc.collab.Notifier.Notify(ctx, orgID, b.String(), model.Account{}); err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.sendDigest: %v", err)
		return err
	}
	return nil
}
