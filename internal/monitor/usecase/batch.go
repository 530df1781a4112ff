package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/internal/monitor/repository"
)

// ProcessAccountList is the one-click workflow: score every account with
// concurrent research and intent analysis, partition by priority, suggest
// sequences for the ready-to-send bucket, raise one aggregate alert for
// the high-priority bucket, and seed a per-account engagement trigger so
// the periodic loop keeps watching each account.
func (uc *usecase) ProcessAccountList(ctx context.Context, sc model.Scope, ip monitor.ProcessAccountListInput) (monitor.ProcessAccountListOutput, error) {
	if len(ip.Accounts) == 0 {
		return monitor.ProcessAccountListOutput{}, monitor.ErrNoAccounts
	}

	scored := uc.scoreAccounts(ctx, ip.Accounts)

	var out monitor.ProcessAccountListOutput
	for _, ap := range scored {
		if ap.PriorityScore > uc.cfg.HighPriorityThreshold {
			out.HighPriority = append(out.HighPriority, ap)
		}
		if ap.PriorityScore > uc.cfg.ReadyToSendThreshold {
			out.ReadyToSend = append(out.ReadyToSend, ap)
			out.Suggestions = append(out.Suggestions, uc.suggestSequence(ctx, ap))
		} else if ap.PriorityScore >= uc.cfg.NurtureFloor {
			out.NeedsNurturing = append(out.NeedsNurturing, ap)
		}
	}

	if len(out.HighPriority) > 0 {
		uc.raiseBatchAlert(ctx, sc.OrgID, out.HighPriority)
	}

	for _, ap := range scored {
		uc.seedEngagementTrigger(ctx, sc, ap.Account)
	}

	return out, nil
}

// scoreAccounts fans research and intent analysis out over a bounded
// worker pool and joins the results. Accounts whose collaborator calls
// fail are logged and dropped from the batch.
func (uc *usecase) scoreAccounts(ctx context.Context, accounts []model.Account) []monitor.AccountPriority {
	type result struct {
		idx int
		ap  monitor.AccountPriority
		ok  bool
	}

	workers := uc.cfg.BatchConcurrency
	if workers < 1 {
		workers = 1
	}
	if workers > len(accounts) {
		workers = len(accounts)
	}

	jobs := make(chan int)
	results := make(chan result, len(accounts))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				ap, ok := uc.scoreAccount(ctx, accounts[idx])
				results <- result{idx: idx, ap: ap, ok: ok}
			}
		}()
	}

	go func() {
		for idx := range accounts {
			jobs <- idx
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	// Join, preserving input order so the caller's attribution is stable.
	byIdx := make([]*monitor.AccountPriority, len(accounts))
	for res := range results {
		if res.ok {
			ap := res.ap
			byIdx[res.idx] = &ap
		}
	}

	scored := make([]monitor.AccountPriority, 0, len(accounts))
	for _, ap := range byIdx {
		if ap != nil {
			scored = append(scored, *ap)
		}
	}
	return scored
}

// scoreAccount runs research and intent analysis concurrently for a
// single account.
func (uc *usecase) scoreAccount(ctx context.Context, account model.Account) (monitor.AccountPriority, bool) {
	var (
		wg          sync.WaitGroup
		research    model.ResearchSummary
		intent      model.IntentAnalysis
		researchErr error
		intentErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		research, researchErr = uc.collab.Research.Research(ctx, account)
	}()
	go func() {
		defer wg.Done()
		intent, intentErr = uc.collab.Research.IntentAnalysis(ctx, account)
	}()
	wg.Wait()

	if researchErr != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.scoreAccount: research %s: %v", account.ID, researchErr)
		return monitor.AccountPriority{}, false
	}
	if intentErr != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.scoreAccount: intent %s: %v", account.ID, intentErr)
		return monitor.AccountPriority{}, false
	}

	return monitor.AccountPriority{
		Account:       account,
		PriorityScore: uc.cfg.ResearchWeight*research.Score + uc.cfg.IntentWeight*intent.Score,
		ResearchScore: research.Score,
		IntentScore:   intent.Score,
		Readiness:     intent.Readiness,
	}, true
}

// suggestSequence picks the recommended outreach approach and assembles
// the human-readable reasoning for one ready-to-send account.
func (uc *usecase) suggestSequence(ctx context.Context, ap monitor.AccountPriority) monitor.SequenceSuggestion {
	approach := "standard_outreach"
	switch {
	case ap.PriorityScore > uc.cfg.HighPriorityThreshold:
		approach = "executive_outreach"
	case strings.EqualFold(ap.Readiness, "hot"):
		approach = "fast_track"
	}

	reasoning := fmt.Sprintf("Priority score %.1f (research %.1f, intent %.1f)",
		ap.PriorityScore, ap.ResearchScore, ap.IntentScore)
	if ap.Readiness != "" {
		reasoning += fmt.Sprintf("; buyer readiness %s", ap.Readiness)
	}

	// Pull the top research facts into the reasoning so a rep can see at
	// a glance why the account surfaced.
	research, err := uc.collab.Research.Research(ctx, ap.Account)
	if err == nil && len(research.Facts) > 0 {
		facts := research.Facts
		if len(facts) > 2 {
			facts = facts[:2]
		}
		reasoning += "; " + strings.Join(facts, "; ")
	}

	return monitor.SequenceSuggestion{
		AccountID: ap.Account.ID,
		Approach:  approach,
		Reasoning: reasoning,
	}
}

func (uc *usecase) raiseBatchAlert(ctx context.Context, orgID string, high []monitor.AccountPriority) {
	ids := make([]string, 0, len(high))
	names := make([]string, 0, len(high))
	for _, ap := range high {
		ids = append(ids, ap.Account.ID)
		names = append(names, ap.Account.Name)
	}

	uc.createAlert(ctx, orgID, repository.CreateAlertOptions{
		Severity:         model.AlertSeverityHigh,
		Title:            fmt.Sprintf("High-Priority Accounts Identified (%d)", len(high)),
		Description:      fmt.Sprintf("Batch processing surfaced high-priority accounts: %s", strings.Join(names, ", ")),
		AffectedAccounts: ids,
		SuggestedActions: []string{
			"Review suggested sequences",
			"Assign owners for immediate outreach",
		},
	})
}

// seedEngagementTrigger registers the per-account engagement-spike
// trigger that keeps the periodic loop watching a batch-processed
// account.
func (uc *usecase) seedEngagementTrigger(ctx context.Context, sc model.Scope, account model.Account) {
	_, err := uc.repo.Trigger.Create(ctx, sc, repository.CreateTriggerOptions{
		Name:      fmt.Sprintf("Engagement Spike: %s", account.Name),
		AccountID: account.ID,
		Conditions: []model.Condition{
			{Field: "velocity", Operator: model.OperatorGreaterThan, Threshold: 10, Window: 24 * time.Hour},
		},
		Actions: []model.Action{
			{Type: model.ActionNotifyTeam, Config: map[string]string{
				"message": fmt.Sprintf("Engagement spike detected for %s", account.Name),
			}},
		},
		Priority: model.TriggerPriorityHigh,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.seedEngagementTrigger: %v", err)
	}
}
