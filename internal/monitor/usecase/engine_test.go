package usecase

import (
	"context"
	"sync"
	"time"

	"monitor-srv/config"
	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/internal/monitor/repository/memory"
	"monitor-srv/pkg/log"
)

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
}

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		TickInterval:          10 * time.Millisecond,
		TrendUpThreshold:      2,
		TrendDownThreshold:    -2,
		HistoryRetention:      48 * time.Hour,
		BatchConcurrency:      4,
		HighPriorityThreshold: 85,
		ReadyToSendThreshold:  80,
		NurtureFloor:          60,
		ResearchWeight:        0.4,
		IntentWeight:          0.6,
		ContentTimeout:        time.Second,
		NotifyTimeout:         time.Second,
	}
}

// --- fake collaborators ---

type fakeSignals struct {
	mu     sync.Mutex
	deltas map[string]map[model.SignalCategory]float64
	calls  int
	err    error
}

func (f *fakeSignals) ObserveDeltas(ctx context.Context, orgID, accountID string) (map[model.SignalCategory]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.deltas[accountID], nil
}

type fakeResearch struct {
	mu         sync.Mutex
	research   map[string]model.ResearchSummary
	intent     map[string]model.IntentAnalysis
	failFor    map[string]error
	researched int
}

func (f *fakeResearch) Research(ctx context.Context, account model.Account) (model.ResearchSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.researched++
	if err := f.failFor[account.ID]; err != nil {
		return model.ResearchSummary{}, err
	}
	return f.research[account.ID], nil
}

func (f *fakeResearch) IntentAnalysis(ctx context.Context, account model.Account) (model.IntentAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failFor[account.ID]; err != nil {
		return model.IntentAnalysis{}, err
	}
	return f.intent[account.ID], nil
}

type fakeContent struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeContent) Generate(ctx context.Context, account model.Account, approach string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, account.ID)
	if f.err != nil {
		return "", f.err
	}
	return "generated content", nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
	notified chan struct{}
	err      error
}

func (f *fakeNotifier) Notify(ctx context.Context, orgID, message string, account model.Account) error {
	f.mu.Lock()
	f.messages = append(f.messages, message)
	f.mu.Unlock()
	if f.notified != nil {
		f.notified <- struct{}{}
	}
	return f.err
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

type fakeSequencer struct {
	mu      sync.Mutex
	started []string
	err     error
}

func (f *fakeSequencer) StartSequence(ctx context.Context, account model.Account, sequence string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.started = append(f.started, account.ID+":"+sequence)
	return nil
}

type fakeFeed struct {
	mu         sync.Mutex
	activities map[string][]model.CompetitorActivity
	err        error
}

func (f *fakeFeed) Activities(ctx context.Context, competitor, orgID string) ([]model.CompetitorActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.activities[competitor], nil
}

type fakeDirectory struct {
	mu          sync.Mutex
	orgs        []string
	accounts    map[string][]model.Account
	competitors map[string][]string
	priorities  map[string]string
	tasks       []string
	panicOrg    string
	updateErr   error
}

func (f *fakeDirectory) Organizations(ctx context.Context) ([]string, error) {
	return f.orgs, nil
}

func (f *fakeDirectory) TrackedAccounts(ctx context.Context, orgID string) ([]model.Account, error) {
	if orgID == f.panicOrg {
		panic("directory blew up")
	}
	return f.accounts[orgID], nil
}

func (f *fakeDirectory) TrackedCompetitors(ctx context.Context, orgID string) ([]string, error) {
	return f.competitors[orgID], nil
}

func (f *fakeDirectory) UpdatePriority(ctx context.Context, orgID string, account model.Account, priority string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.priorities == nil {
		f.priorities = make(map[string]string)
	}
	f.priorities[account.ID] = priority
	return nil
}

func (f *fakeDirectory) CreateTask(ctx context.Context, orgID string, account model.Account, title string, assignees []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, account.ID+":"+title)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	alerts []model.MonitoringAlert
}

func (f *fakePublisher) PublishAlert(orgID string, alert model.MonitoringAlert) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, alert)
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.alerts)
}

// --- fixture ---

type engineFixture struct {
	uc        *usecase
	repos     memory.Repositories
	signals   *fakeSignals
	research  *fakeResearch
	content   *fakeContent
	notifier  *fakeNotifier
	sequencer *fakeSequencer
	feed      *fakeFeed
	directory *fakeDirectory
	publisher *fakePublisher
}

func newEngineFixture(cfg config.EngineConfig) *engineFixture {
	l := testLogger()
	fx := &engineFixture{
		repos:     memory.New(l),
		signals:   &fakeSignals{deltas: map[string]map[model.SignalCategory]float64{}},
		research:  &fakeResearch{research: map[string]model.ResearchSummary{}, intent: map[string]model.IntentAnalysis{}, failFor: map[string]error{}},
		content:   &fakeContent{},
		notifier:  &fakeNotifier{},
		sequencer: &fakeSequencer{},
		feed:      &fakeFeed{activities: map[string][]model.CompetitorActivity{}},
		directory: &fakeDirectory{accounts: map[string][]model.Account{}, competitors: map[string][]string{}},
		publisher: &fakePublisher{},
	}

	uc := New(l, cfg, Repositories{
		Trigger:  fx.repos.Trigger,
		Alert:    fx.repos.Alert,
		Intent:   fx.repos.Intent,
		Activity: fx.repos.Activity,
	}, Collaborators{
		Signals:     fx.signals,
		Research:    fx.research,
		Content:     fx.content,
		Notifier:    fx.notifier,
		Sequencer:   fx.sequencer,
		Competitors: fx.feed,
		Directory:   fx.directory,
	}, fx.publisher)

	fx.uc = uc.(*usecase)
	return fx
}

func (fx *engineFixture) mustRegister(ctx context.Context, orgID string, ip monitor.RegisterTriggerInput) model.Trigger {
	t, err := fx.uc.RegisterTrigger(ctx, model.Scope{OrgID: orgID, UserID: "u1"}, ip)
	if err != nil {
		panic(err)
	}
	return t
}

func (fx *engineFixture) listAlerts(ctx context.Context, orgID string) []model.MonitoringAlert {
	alerts, err := fx.repos.Alert.List(ctx, orgID)
	if err != nil {
		panic(err)
	}
	return alerts
}

func (fx *engineFixture) trigger(ctx context.Context, orgID, id string) model.Trigger {
	triggers, err := fx.repos.Trigger.List(ctx, model.Scope{OrgID: orgID}, repository.ListTriggerOptions{})
	if err != nil {
		panic(err)
	}
	for _, t := range triggers {
		if t.ID == id {
			return t
		}
	}
	panic("trigger not found: " + id)
}
