package model

import "time"

// SignalCategory names one class of buying signal tracked per account.
type SignalCategory string

const (
	SignalWebResearch        SignalCategory = "web_research"
	SignalContentDownloads   SignalCategory = "content_downloads"
	SignalPricingPageVisits  SignalCategory = "pricing_page_visits"
	SignalDemoRequests       SignalCategory = "demo_requests"
	SignalCompetitorResearch SignalCategory = "competitor_research"
	SignalTechnologySearches SignalCategory = "technology_searches"
)

// SignalCategories lists every tracked category in stable order.
var SignalCategories = []SignalCategory{
	SignalWebResearch,
	SignalContentDownloads,
	SignalPricingPageVisits,
	SignalDemoRequests,
	SignalCompetitorResearch,
	SignalTechnologySearches,
}

// Trend classifies the direction of an account's intent score.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// TotalSample is one point of the per-account total-score history, kept so
// windowed conditions can look back over past ticks.
type TotalSample struct {
	Total float64   `json:"total"`
	At    time.Time `json:"at"`
}

// IntentMonitoringData is the cumulative per-account signal state. One
// instance per account, created lazily on first observation.
type IntentMonitoringData struct {
	AccountID   string                     `json:"account_id"`
	Signals     map[SignalCategory]float64 `json:"signals"`
	Trend       Trend                      `json:"trend"`
	Velocity    float64                    `json:"velocity"`
	LastUpdated time.Time                  `json:"last_updated"`
	History     []TotalSample              `json:"history,omitempty"`
}

// NewIntentMonitoringData initializes zeroed state for an account.
func NewIntentMonitoringData(accountID string) *IntentMonitoringData {
	signals := make(map[SignalCategory]float64, len(SignalCategories))
	for _, c := range SignalCategories {
		signals[c] = 0
	}
	return &IntentMonitoringData{
		AccountID: accountID,
		Signals:   signals,
		Trend:     TrendStable,
	}
}

// TotalScore is the sum of all category scores.
func (d *IntentMonitoringData) TotalScore() float64 {
	var total float64
	for _, v := range d.Signals {
		total += v
	}
	return total
}

// TotalAt returns the most recent history sample at or before cutoff.
// The second return is false when no sample that old exists.
func (d *IntentMonitoringData) TotalAt(cutoff time.Time) (float64, bool) {
	found := false
	var total float64
	for _, s := range d.History {
		if s.At.After(cutoff) {
			break
		}
		total = s.Total
		found = true
	}
	return total, found
}

// Clone returns a deep copy safe to hand outside the owning store.
func (d *IntentMonitoringData) Clone() *IntentMonitoringData {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Signals = make(map[SignalCategory]float64, len(d.Signals))
	for k, v := range d.Signals {
		cp.Signals[k] = v
	}
	cp.History = append([]TotalSample(nil), d.History...)
	return &cp
}
