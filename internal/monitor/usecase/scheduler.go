package usecase

import (
	"context"
	"runtime/debug"
	"time"

	"monitor-srv/internal/model"
)

// Start arms the periodic tick. Calling Start while already running
// re-arms the timer instead of stacking a second loop.
func (uc *usecase) Start(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.running {
		uc.stopLocked()
	}

	uc.ticker = time.NewTicker(uc.cfg.TickInterval)
	uc.quit = make(chan struct{})
	uc.done = make(chan struct{})
	uc.running = true

	go uc.loop(uc.ticker, uc.quit, uc.done)

	uc.l.Infof(ctx, "internal.monitor.usecase.Start: scheduler running, tick interval %s", uc.cfg.TickInterval)
	return nil
}

// Stop disarms the timer. An in-flight tick is allowed to complete; no
// new tick starts afterwards. Stopping an idle scheduler is a no-op.
func (uc *usecase) Stop(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.running {
		return nil
	}
	uc.stopLocked()

	uc.l.Infof(ctx, "internal.monitor.usecase.Stop: scheduler stopped")
	return nil
}

// stopLocked tears down the current loop. Caller holds uc.mu.
func (uc *usecase) stopLocked() {
	uc.ticker.Stop()
	close(uc.quit)
	<-uc.done
	uc.running = false
}

func (uc *usecase) loop(ticker *time.Ticker, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-ticker.C:
			// The tick runs on a background context so Stop never
			// cancels it mid-flight.
			uc.runTick(context.Background())
		case <-quit:
			return
		}
	}
}

// runTick walks every known organization once. A failure in one
// organization is logged and does not stop the others; the loop itself
// is never fatal.
func (uc *usecase) runTick(ctx context.Context) {
	orgs, err := uc.collab.Directory.Organizations(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.runTick: %v", err)
		return
	}

	for _, orgID := range orgs {
		uc.tickOrganization(ctx, orgID)
	}

	uc.maybeSendDigests(ctx, orgs)
}

func (uc *usecase) tickOrganization(ctx context.Context, orgID string) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.tickOrganization: panic processing org %s: %v\n%s",
				orgID, r, debug.Stack())
		}
	}()

	accounts, err := uc.collab.Directory.TrackedAccounts(ctx, orgID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.tickOrganization: %v", err)
		return
	}

	// Phase 1: fold fresh signals into each account's state.
	states := make(map[string]*model.IntentMonitoringData, len(accounts))
	for _, account := range accounts {
		deltas, err := uc.collab.Signals.ObserveDeltas(ctx, orgID, account.ID)
		if err != nil {
			// Signal source outage degrades to "nothing observed" for
			// this account this tick.
			uc.l.Errorf(ctx, "internal.monitor.usecase.tickOrganization: observe %s: %v", account.ID, err)
			continue
		}
		state, err := uc.aggregateSignals(ctx, orgID, account.ID, deltas)
		if err != nil {
			continue
		}
		states[account.ID] = state
	}

	// Phase 2: evaluate active triggers against the updated states.
	uc.evaluateOrganization(ctx, orgID, accounts, states)

	// Phase 3: competitor scan, independent of the trigger path.
	competitors, err := uc.collab.Directory.TrackedCompetitors(ctx, orgID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.tickOrganization: %v", err)
		return
	}
	for _, competitor := range competitors {
		uc.scanCompetitor(ctx, orgID, competitor)
	}
}

func (uc *usecase) evaluateOrganization(ctx context.Context, orgID string, accounts []model.Account, states map[string]*model.IntentMonitoringData) {
	triggers, err := uc.repo.Trigger.ListActive(ctx, orgID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.evaluateOrganization: %v", err)
		return
	}

	now := uc.clock()
	for _, trigger := range triggers {
		fired := false
		for _, account := range accounts {
			if !trigger.AppliesTo(account.ID) {
				continue
			}
			state, ok := states[account.ID]
			if !ok {
				continue
			}
			if !uc.evaluateTrigger(trigger, state, now) {
				continue
			}
			fired = true
			uc.executeActions(ctx, trigger, account, state)
		}

		// The fire counter advances once per tick in which the trigger
		// held, regardless of how many accounts matched.
		if fired {
			if err := uc.repo.Trigger.RecordFired(ctx, orgID, trigger.ID, now); err != nil {
				uc.l.Errorf(ctx, "internal.monitor.usecase.evaluateOrganization: %v", err)
			}
		}
	}
}
