package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
)

func batchFixture(scores map[string]float64) *engineFixture {
	fx := newEngineFixture(testEngineConfig())
	for id, score := range scores {
		fx.research.research[id] = model.ResearchSummary{Score: score}
		fx.research.intent[id] = model.IntentAnalysis{Score: score}
	}
	return fx
}

func batchAccounts(ids ...string) []model.Account {
	accounts := make([]model.Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, model.Account{ID: id, Name: "Account " + id})
	}
	return accounts
}

func priorityIDs(aps []monitor.AccountPriority) []string {
	ids := make([]string, 0, len(aps))
	for _, ap := range aps {
		ids = append(ids, ap.Account.ID)
	}
	return ids
}

func TestProcessAccountListPartitioning(t *testing.T) {
	// With research == intent the weighted score equals the raw score,
	// so the bucket boundaries are easy to read off.
	fx := batchFixture(map[string]float64{
		"acc-hot":  95,
		"acc-warm": 82,
		"acc-mild": 70,
		"acc-cold": 40,
	})
	ctx := context.Background()
	sc := model.Scope{OrgID: "org-1", UserID: "u1"}

	out, err := fx.uc.ProcessAccountList(ctx, sc, monitor.ProcessAccountListInput{
		Accounts: batchAccounts("acc-hot", "acc-warm", "acc-mild", "acc-cold"),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if ids := priorityIDs(out.HighPriority); len(ids) != 1 || ids[0] != "acc-hot" {
		t.Errorf("high priority = %v, want [acc-hot]", ids)
	}
	// Ready-to-send includes the high-priority bucket.
	if ids := priorityIDs(out.ReadyToSend); len(ids) != 2 || ids[0] != "acc-hot" || ids[1] != "acc-warm" {
		t.Errorf("ready to send = %v, want [acc-hot acc-warm]", ids)
	}
	if ids := priorityIDs(out.NeedsNurturing); len(ids) != 1 || ids[0] != "acc-mild" {
		t.Errorf("needs nurturing = %v, want [acc-mild]", ids)
	}
	if len(out.Suggestions) != 2 {
		t.Errorf("suggestions = %d, want one per ready-to-send account", len(out.Suggestions))
	}

	// One aggregate alert for the high-priority bucket.
	alerts := fx.listAlerts(ctx, "org-1")
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	if !strings.Contains(alerts[0].Title, "High-Priority Accounts Identified (1)") {
		t.Errorf("alert title = %q", alerts[0].Title)
	}

	// Every processed account gets its engagement trigger, cold included.
	triggers, err := fx.uc.ListTriggers(ctx, sc)
	if err != nil {
		t.Fatalf("list triggers: %v", err)
	}
	if len(triggers) != 4 {
		t.Fatalf("seeded triggers = %d, want 4", len(triggers))
	}
	for _, tr := range triggers {
		if tr.AccountID == "" {
			t.Errorf("trigger %q not scoped to an account", tr.Name)
		}
		if !strings.HasPrefix(tr.Name, "Engagement Spike: ") {
			t.Errorf("trigger name = %q", tr.Name)
		}
		if tr.Priority != model.TriggerPriorityHigh {
			t.Errorf("trigger priority = %s, want high", tr.Priority)
		}
	}
}

func TestProcessAccountListWeightedScore(t *testing.T) {
	fx := newEngineFixture(testEngineConfig())
	fx.research.research["acc-1"] = model.ResearchSummary{Score: 50}
	fx.research.intent["acc-1"] = model.IntentAnalysis{Score: 100}
	ctx := context.Background()

	out, err := fx.uc.ProcessAccountList(ctx, model.Scope{OrgID: "org-1"}, monitor.ProcessAccountListInput{
		Accounts: batchAccounts("acc-1"),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	// 0.4*50 + 0.6*100 = 80: on the ready-to-send boundary, excluded.
	if len(out.ReadyToSend) != 0 {
		t.Errorf("ready to send = %v, want empty at the threshold", priorityIDs(out.ReadyToSend))
	}
	if ids := priorityIDs(out.NeedsNurturing); len(ids) != 1 {
		t.Errorf("needs nurturing = %v, want [acc-1]", ids)
	}
}

func TestProcessAccountListSuggestions(t *testing.T) {
	fx := batchFixture(map[string]float64{"acc-hot": 95, "acc-warm": 82})
	fx.research.intent["acc-warm"] = model.IntentAnalysis{Score: 82, Readiness: "hot"}
	fx.research.research["acc-hot"] = model.ResearchSummary{Score: 95, Facts: []string{"Hiring SDRs", "New CRO", "Office move"}}
	ctx := context.Background()

	out, err := fx.uc.ProcessAccountList(ctx, model.Scope{OrgID: "org-1"}, monitor.ProcessAccountListInput{
		Accounts: batchAccounts("acc-hot", "acc-warm"),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(out.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(out.Suggestions))
	}

	byAccount := map[string]monitor.SequenceSuggestion{}
	for _, s := range out.Suggestions {
		byAccount[s.AccountID] = s
	}
	if got := byAccount["acc-hot"].Approach; got != "executive_outreach" {
		t.Errorf("acc-hot approach = %q, want executive_outreach", got)
	}
	if got := byAccount["acc-warm"].Approach; got != "fast_track" {
		t.Errorf("acc-warm approach = %q, want fast_track", got)
	}
	reasoning := byAccount["acc-hot"].Reasoning
	if !strings.Contains(reasoning, "Hiring SDRs") || strings.Contains(reasoning, "Office move") {
		t.Errorf("reasoning = %q, want top two facts only", reasoning)
	}
}

func TestProcessAccountListDropsFailedAccounts(t *testing.T) {
	fx := batchFixture(map[string]float64{"acc-ok": 90, "acc-bad": 90})
	fx.research.failFor["acc-bad"] = errors.New("research service down")
	ctx := context.Background()

	out, err := fx.uc.ProcessAccountList(ctx, model.Scope{OrgID: "org-1"}, monitor.ProcessAccountListInput{
		Accounts: batchAccounts("acc-ok", "acc-bad"),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if ids := priorityIDs(out.HighPriority); len(ids) != 1 || ids[0] != "acc-ok" {
		t.Errorf("high priority = %v, want [acc-ok]", ids)
	}
	triggers, err := fx.uc.ListTriggers(ctx, model.Scope{OrgID: "org-1"})
	if err != nil {
		t.Fatalf("list triggers: %v", err)
	}
	if len(triggers) != 1 {
		t.Errorf("seeded triggers = %d, want 1; failed accounts are dropped", len(triggers))
	}
}

func TestProcessAccountListEmpty(t *testing.T) {
	fx := newEngineFixture(testEngineConfig())

	_, err := fx.uc.ProcessAccountList(context.Background(), model.Scope{OrgID: "org-1"}, monitor.ProcessAccountListInput{})
	if !errors.Is(err, monitor.ErrNoAccounts) {
		t.Errorf("err = %v, want ErrNoAccounts", err)
	}
}
