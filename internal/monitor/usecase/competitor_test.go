package usecase

import (
	"context"
	"testing"
	"time"

	"monitor-srv/internal/model"
)

func TestScanCompetitorHighImpactAlert(t *testing.T) {
	fx := newEngineFixture(testEngineConfig())
	ctx := context.Background()

	now := time.Now()
	fx.feed.activities["RivalCo"] = []model.CompetitorActivity{
		{
			Competitor:       "RivalCo",
			Kind:             model.ActivityPricingChange,
			Description:      "Cut enterprise tier pricing by 20%",
			Impact:           model.ImpactHigh,
			AffectedAccounts: []string{"acc-1", "acc-2"},
			DetectedAt:       now,
		},
		{
			Competitor:  "RivalCo",
			Kind:        model.ActivityCustomerWin,
			Description: "Won a mid-market logo",
			Impact:      model.ImpactLow,
			DetectedAt:  now,
		},
	}

	fx.uc.scanCompetitor(ctx, "org-1", "RivalCo")

	alerts := fx.listAlerts(ctx, "org-1")
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1; only high impact escalates", len(alerts))
	}
	alert := alerts[0]
	if alert.Title != "Competitor Alert: RivalCo" {
		t.Errorf("title = %q", alert.Title)
	}
	if alert.Severity != model.AlertSeverityHigh {
		t.Errorf("severity = %s, want high", alert.Severity)
	}
	if alert.TriggerID != "" {
		t.Errorf("trigger id = %q, want empty for competitor alerts", alert.TriggerID)
	}
	if len(alert.SuggestedActions) == 0 {
		t.Error("expected playbook recommendations on the alert")
	}

	// Every activity lands in the log regardless of impact.
	logged, err := fx.repos.Activity.ListRecent(ctx, "org-1", now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(logged) != 2 {
		t.Errorf("logged activities = %d, want 2", len(logged))
	}
	if fx.publisher.count() != 1 {
		t.Errorf("published = %d, want 1", fx.publisher.count())
	}
}

func TestScanCompetitorNoActivities(t *testing.T) {
	fx := newEngineFixture(testEngineConfig())
	ctx := context.Background()

	fx.uc.scanCompetitor(ctx, "org-1", "GhostCo")

	if got := len(fx.listAlerts(ctx, "org-1")); got != 0 {
		t.Errorf("alerts = %d, want 0 for a quiet competitor", got)
	}
}

func TestCompetitorRecommendationsPerKind(t *testing.T) {
	kinds := []model.ActivityKind{
		model.ActivityProductLaunch,
		model.ActivityPricingChange,
		model.ActivityMarketExpansion,
		model.ActivityCustomerWin,
		model.ActivityFundingRound,
		model.ActivityKind("unheard_of"),
	}
	for _, kind := range kinds {
		if recs := competitorRecommendations(kind); len(recs) == 0 {
			t.Errorf("kind %s: no recommendations", kind)
		}
	}
}
