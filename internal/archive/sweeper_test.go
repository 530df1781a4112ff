package archive

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"monitor-srv/config"
	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/internal/monitor/repository/memory"
	"monitor-srv/pkg/log"
)

type fakeSink struct {
	mu      sync.Mutex
	alerts  []model.MonitoringAlert
	intents []string
	err     error
}

func (f *fakeSink) StoreAlert(ctx context.Context, alert model.MonitoringAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.alerts = append(f.alerts, alert)
	return nil
}

func (f *fakeSink) StoreIntent(ctx context.Context, orgID string, data model.IntentMonitoringData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.intents = append(f.intents, orgID+":"+data.AccountID)
	return nil
}

type sweeperFixture struct {
	sweeper *Sweeper
	sink    *fakeSink
	repos   memory.Repositories
}

func newSweeperFixture(cfg config.ArchiveConfig) *sweeperFixture {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
	repos := memory.New(l)
	sink := &fakeSink{}
	return &sweeperFixture{
		sweeper: NewSweeper(l, cfg, sink, repos.Alert, repos.Intent),
		sink:    sink,
		repos:   repos,
	}
}

func TestSweepArchivesAcknowledgedAlerts(t *testing.T) {
	// A zero TTL makes anything already acknowledged eligible.
	fx := newSweeperFixture(config.ArchiveConfig{AlertTTL: 0, IntentIdleTTL: time.Hour})
	ctx := context.Background()

	acked, err := fx.repos.Alert.Create(ctx, "org-1", repository.CreateAlertOptions{
		Severity: model.AlertSeverityHigh,
		Title:    "handled",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := fx.repos.Alert.Create(ctx, "org-1", repository.CreateAlertOptions{
		Severity: model.AlertSeverityHigh,
		Title:    "still open",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := fx.repos.Alert.Acknowledge(ctx, acked.ID, "alice"); err != nil {
		t.Fatalf("ack: %v", err)
	}

	fx.sweeper.sweep(ctx)

	if len(fx.sink.alerts) != 1 || fx.sink.alerts[0].ID != acked.ID {
		t.Errorf("archived = %d alerts, want the acknowledged one", len(fx.sink.alerts))
	}
	remaining, err := fx.repos.Alert.List(ctx, "org-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Title != "still open" {
		t.Errorf("remaining = %d alerts; open alerts must never be evicted", len(remaining))
	}
}

func TestSweepArchivesIdleIntent(t *testing.T) {
	fx := newSweeperFixture(config.ArchiveConfig{AlertTTL: time.Hour, IntentIdleTTL: time.Hour})
	ctx := context.Background()

	stale := model.NewIntentMonitoringData("acc-stale")
	stale.LastUpdated = time.Now().Add(-2 * time.Hour)
	fresh := model.NewIntentMonitoringData("acc-fresh")
	fresh.LastUpdated = time.Now()

	if err := fx.repos.Intent.Save(ctx, "org-1", stale); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := fx.repos.Intent.Save(ctx, "org-1", fresh); err != nil {
		t.Fatalf("save: %v", err)
	}

	fx.sweeper.sweep(ctx)

	if len(fx.sink.intents) != 1 || fx.sink.intents[0] != "org-1:acc-stale" {
		t.Errorf("archived intents = %v, want [org-1:acc-stale]", fx.sink.intents)
	}
	if _, err := fx.repos.Intent.Get(ctx, "org-1", "acc-stale"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("stale state still present after sweep: %v", err)
	}
	if _, err := fx.repos.Intent.Get(ctx, "org-1", "acc-fresh"); err != nil {
		t.Errorf("fresh state evicted: %v", err)
	}
}

func TestSweepFailedSinkLeavesRecord(t *testing.T) {
	fx := newSweeperFixture(config.ArchiveConfig{AlertTTL: 0, IntentIdleTTL: time.Hour})
	ctx := context.Background()

	acked, err := fx.repos.Alert.Create(ctx, "org-1", repository.CreateAlertOptions{
		Severity: model.AlertSeverityHigh,
		Title:    "handled",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := fx.repos.Alert.Acknowledge(ctx, acked.ID, "alice"); err != nil {
		t.Fatalf("ack: %v", err)
	}

	fx.sink.err = errors.New("bucket unavailable")
	fx.sweeper.sweep(ctx)

	remaining, err := fx.repos.Alert.List(ctx, "org-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatal("record removed despite failed archive write")
	}

	// The next pass picks it up once the sink recovers.
	fx.sink.err = nil
	fx.sweeper.sweep(ctx)
	if len(fx.sink.alerts) != 1 {
		t.Errorf("archived = %d, want 1 after recovery", len(fx.sink.alerts))
	}
	remaining, _ = fx.repos.Alert.List(ctx, "org-1")
	if len(remaining) != 0 {
		t.Errorf("remaining = %d, want 0 after recovery", len(remaining))
	}
}

func TestSweeperRunShutdown(t *testing.T) {
	fx := newSweeperFixture(config.ArchiveConfig{SweepInterval: 10 * time.Millisecond, AlertTTL: time.Hour, IntentIdleTTL: time.Hour})

	go fx.sweeper.Run()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := fx.sweeper.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
