package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/internal/monitor/repository"
)

func saveIntent(t *testing.T, fx *engineFixture, orgID string, data *model.IntentMonitoringData) {
	t.Helper()
	if err := fx.repos.Intent.Save(context.Background(), orgID, data); err != nil {
		t.Fatalf("save intent: %v", err)
	}
}

func TestDashboardSnapshot(t *testing.T) {
	fx := newEngineFixture(testEngineConfig())
	ctx := context.Background()
	sc := model.Scope{OrgID: "org-1", UserID: "u1"}

	hot := model.NewIntentMonitoringData("acc-hot")
	hot.Signals[model.SignalWebResearch] = 60
	hot.Signals[model.SignalDemoRequests] = 80
	hot.Velocity = 12
	hot.Trend = model.TrendIncreasing
	hot.LastUpdated = time.Now()
	saveIntent(t, fx, "org-1", hot)

	mild := model.NewIntentMonitoringData("acc-mild")
	mild.Signals[model.SignalWebResearch] = 20
	mild.LastUpdated = time.Now()
	saveIntent(t, fx, "org-1", mild)

	if _, err := fx.repos.Alert.Create(ctx, "org-1", repository.CreateAlertOptions{
		Severity: model.AlertSeverityHigh, Title: "open",
	}); err != nil {
		t.Fatalf("create alert: %v", err)
	}
	acked, err := fx.repos.Alert.Create(ctx, "org-1", repository.CreateAlertOptions{
		Severity: model.AlertSeverityLow, Title: "handled",
	})
	if err != nil {
		t.Fatalf("create alert: %v", err)
	}
	if err := fx.repos.Alert.Acknowledge(ctx, acked.ID, "alice"); err != nil {
		t.Fatalf("ack: %v", err)
	}

	reg := fx.mustRegister(ctx, "org-1", monitor.RegisterTriggerInput{
		Name:       "spike",
		Conditions: validConditions(),
	})
	if err := fx.repos.Trigger.RecordFired(ctx, "org-1", reg.ID, time.Now()); err != nil {
		t.Fatalf("record fired: %v", err)
	}

	out, err := fx.uc.Dashboard(ctx, sc)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if len(out.UnacknowledgedAlerts) != 1 || out.UnacknowledgedAlerts[0].Title != "open" {
		t.Errorf("unacknowledged = %d, want only the open alert", len(out.UnacknowledgedAlerts))
	}
	if out.TrackedAccounts != 2 {
		t.Errorf("tracked accounts = %d, want 2", out.TrackedAccounts)
	}
	// Intent and health are sorted by total score, hottest first.
	if out.RecentIntent[0].AccountID != "acc-hot" {
		t.Errorf("top intent = %s, want acc-hot", out.RecentIntent[0].AccountID)
	}
	if out.AccountHealth[0].AccountID != "acc-hot" || out.AccountHealth[0].Score != 100 {
		t.Errorf("top health = %+v, want acc-hot capped at 100", out.AccountHealth[0])
	}
	if out.AccountHealth[1].Score != 20 {
		t.Errorf("second health score = %v, want 20", out.AccountHealth[1].Score)
	}
	if got := out.CategoryTotals[model.SignalWebResearch]; got != 80 {
		t.Errorf("web research total = %v, want 80", got)
	}
	if len(out.TriggerStats) != 1 || out.TriggerStats[0].FireCount != 1 {
		t.Errorf("trigger stats = %+v", out.TriggerStats)
	}
}

func TestDashboardEmptyOrg(t *testing.T) {
	fx := newEngineFixture(testEngineConfig())

	out, err := fx.uc.Dashboard(context.Background(), model.Scope{OrgID: "org-empty"})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if out.TrackedAccounts != 0 || len(out.UnacknowledgedAlerts) != 0 {
		t.Errorf("expected empty snapshot, got %+v", out)
	}
}

func TestDigestSummary(t *testing.T) {
	fx := newEngineFixture(testEngineConfig())
	ctx := context.Background()

	if _, err := fx.repos.Alert.Create(ctx, "org-1", repository.CreateAlertOptions{
		Severity: model.AlertSeverityCritical, Title: "hot",
	}); err != nil {
		t.Fatalf("create alert: %v", err)
	}
	if _, err := fx.repos.Alert.Create(ctx, "org-1", repository.CreateAlertOptions{
		Severity: model.AlertSeverityHigh, Title: "warm",
	}); err != nil {
		t.Fatalf("create alert: %v", err)
	}

	mover := model.NewIntentMonitoringData("acc-mover")
	mover.Velocity = 30
	mover.LastUpdated = time.Now()
	saveIntent(t, fx, "org-1", mover)

	if err := fx.uc.Digest(ctx, model.Scope{OrgID: "org-1"}); err != nil {
		t.Fatalf("digest: %v", err)
	}

	if fx.notifier.count() != 1 {
		t.Fatalf("notifications = %d, want 1", fx.notifier.count())
	}
	body := fx.notifier.messages[0]
	if !strings.Contains(body, "New alerts (24h): 2") {
		t.Errorf("digest missing alert count: %q", body)
	}
	if !strings.Contains(body, "1 critical") || !strings.Contains(body, "1 high") {
		t.Errorf("digest missing severity breakdown: %q", body)
	}
	if !strings.Contains(body, "acc-mover") {
		t.Errorf("digest missing top account: %q", body)
	}
}

func TestMaybeSendDigestsInterval(t *testing.T) {
	cfg := testEngineConfig()
	cfg.DigestEnabled = true
	cfg.DigestInterval = time.Hour
	fx := newEngineFixture(cfg)
	ctx := context.Background()

	now := time.Now()
	fx.uc.clock = func() time.Time { return now }

	fx.uc.maybeSendDigests(ctx, []string{"org-1"})
	if fx.notifier.count() != 1 {
		t.Fatalf("notifications = %d, want 1 on first pass", fx.notifier.count())
	}

	// Within the interval nothing new is sent.
	fx.uc.maybeSendDigests(ctx, []string{"org-1"})
	if fx.notifier.count() != 1 {
		t.Errorf("notifications = %d, want still 1", fx.notifier.count())
	}

	now = now.Add(2 * time.Hour)
	fx.uc.maybeSendDigests(ctx, []string{"org-1"})
	if fx.notifier.count() != 2 {
		t.Errorf("notifications = %d, want 2 after the interval", fx.notifier.count())
	}
}

func TestMaybeSendDigestsDisabled(t *testing.T) {
	fx := newEngineFixture(testEngineConfig())

	fx.uc.maybeSendDigests(context.Background(), []string{"org-1"})
	if fx.notifier.count() != 0 {
		t.Errorf("notifications = %d, want 0 when digests are disabled", fx.notifier.count())
	}
}
