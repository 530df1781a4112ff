package usecase

import (
	"sync"
	"time"

	"monitor-srv/config"
	"monitor-srv/internal/collaborator"
	"monitor-srv/internal/monitor"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/pkg/log"
)

// Collaborators bundles the external services the engine consumes.
type Collaborators struct {
	Signals     collaborator.SignalSource
	Research    collaborator.ResearchProvider
	Content     collaborator.ContentGenerator
	Notifier    collaborator.Notifier
	Sequencer   collaborator.Sequencer
	Competitors collaborator.CompetitorFeed
	Directory   collaborator.AccountDirectory
}

// Repositories bundles the engine stores.
type Repositories struct {
	Trigger  repository.TriggerRepository
	Alert    repository.AlertRepository
	Intent   repository.IntentRepository
	Activity repository.ActivityRepository
}

type usecase struct {
	l      log.Logger
	cfg    config.EngineConfig
	repo   Repositories
	collab Collaborators
	pub    monitor.AlertPublisher
	clock  func() time.Time

	// Scheduler state. mu guards everything below; the tick body itself
	// never takes mu, so Stop can wait for an in-flight tick safely.
	mu      sync.Mutex
	running bool
	ticker  *time.Ticker
	quit    chan struct{}
	done    chan struct{}

	digestMu   sync.Mutex
	lastDigest time.Time
}

// New creates the monitoring engine use case. pub may be nil when no
// live alert stream is attached.
func New(l log.Logger, cfg config.EngineConfig, repo Repositories, collab Collaborators, pub monitor.AlertPublisher) monitor.UseCase {
	return &usecase{
		l:      l,
		cfg:    cfg,
		repo:   repo,
		collab: collab,
		pub:    pub,
		clock:  time.Now,
	}
}
