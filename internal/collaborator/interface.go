package collaborator

import (
	"context"

	"monitor-srv/internal/model"
)

// SignalSource yields the per-category signal increments observed for an
// account since the previous tick. Increments are consumed on read.
type SignalSource interface {
	ObserveDeltas(ctx context.Context, orgID, accountID string) (map[model.SignalCategory]float64, error)
}

// ResearchProvider is the research/intent analysis collaborator used by
// the one-click batch workflow.
type ResearchProvider interface {
	Research(ctx context.Context, account model.Account) (model.ResearchSummary, error)
	IntentAnalysis(ctx context.Context, account model.Account) (model.IntentAnalysis, error)
}

// ContentGenerator produces outreach content for an account. Calls may
// have material latency; callers bound them with a context deadline.
type ContentGenerator interface {
	Generate(ctx context.Context, account model.Account, approach string) (string, error)
}

// Notifier delivers a team-facing notification about an account.
type Notifier interface {
	Notify(ctx context.Context, orgID, message string, account model.Account) error
}

// Sequencer enrolls an account into an outreach sequence.
type Sequencer interface {
	StartSequence(ctx context.Context, account model.Account, sequence string) error
}

// CompetitorFeed returns activities detected for a competitor since the
// last scan.
type CompetitorFeed interface {
	Activities(ctx context.Context, competitor, orgID string) ([]model.CompetitorActivity, error)
}

// AccountDirectory exposes the org/account/competitor registry synced
// from the upstream CRM, plus the write paths the engine needs on it.
type AccountDirectory interface {
	Organizations(ctx context.Context) ([]string, error)
	TrackedAccounts(ctx context.Context, orgID string) ([]model.Account, error)
	TrackedCompetitors(ctx context.Context, orgID string) ([]string, error)
	UpdatePriority(ctx context.Context, orgID string, account model.Account, priority string) error
	CreateTask(ctx context.Context, orgID string, account model.Account, title string, assignees []string) error
}
