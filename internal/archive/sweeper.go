package archive

import (
	"context"
	"time"

	"monitor-srv/config"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/pkg/log"
)

// Sweeper periodically moves aged records out of the in-memory stores
// into the archive sink: acknowledged alerts past their TTL, and account
// state not updated for the idle TTL. Open alerts are never evicted.
type Sweeper struct {
	l          log.Logger
	cfg        config.ArchiveConfig
	sink       Sink
	alertRepo  repository.AlertRepository
	intentRepo repository.IntentRepository

	quit chan struct{}
	done chan struct{}
}

// NewSweeper creates a sweeper. Start it with Run on its own goroutine.
func NewSweeper(l log.Logger, cfg config.ArchiveConfig, sink Sink, alertRepo repository.AlertRepository, intentRepo repository.IntentRepository) *Sweeper {
	return &Sweeper{
		l:          l,
		cfg:        cfg,
		sink:       sink,
		alertRepo:  alertRepo,
		intentRepo: intentRepo,
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run sweeps on the configured interval until Shutdown is called.
func (s *Sweeper) Run() {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(context.Background())
		case <-s.quit:
			return
		}
	}
}

// Shutdown stops the sweep loop. An in-flight sweep completes first.
func (s *Sweeper) Shutdown(ctx context.Context) error {
	close(s.quit)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sweep performs one archive pass. Each record is archived before it is
// removed; a failed archive write leaves the record in place for the
// next pass.
func (s *Sweeper) sweep(ctx context.Context) {
	now := time.Now()

	alerts, err := s.alertRepo.ListArchivable(ctx, now.Add(-s.cfg.AlertTTL))
	if err != nil {
		s.l.Errorf(ctx, "internal.archive.sweep: %v", err)
	} else {
		var archived int
		for _, alert := range alerts {
			if err := s.sink.StoreAlert(ctx, alert); err != nil {
				continue
			}
			if err := s.alertRepo.Remove(ctx, alert.OrgID, alert.ID); err != nil {
				s.l.Errorf(ctx, "internal.archive.sweep: remove alert %s: %v", alert.ID, err)
				continue
			}
			archived++
		}
		if archived > 0 {
			s.l.Infof(ctx, "internal.archive.sweep: archived %d alerts", archived)
		}
	}

	idle, err := s.intentRepo.ListIdle(ctx, now.Add(-s.cfg.IntentIdleTTL))
	if err != nil {
		s.l.Errorf(ctx, "internal.archive.sweep: %v", err)
		return
	}
	var archived int
	for _, entry := range idle {
		if err := s.sink.StoreIntent(ctx, entry.OrgID, entry.Data); err != nil {
			continue
		}
		if err := s.intentRepo.Remove(ctx, entry.OrgID, entry.Data.AccountID); err != nil {
			s.l.Errorf(ctx, "internal.archive.sweep: remove intent %s: %v", entry.Data.AccountID, err)
			continue
		}
		archived++
	}
	if archived > 0 {
		s.l.Infof(ctx, "internal.archive.sweep: archived %d idle accounts", archived)
	}
}
