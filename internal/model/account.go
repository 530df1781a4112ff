package model

// Account is the minimal account identity the engine works with. Full
// account records live in the upstream CRM service.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Domain   string `json:"domain,omitempty"`
	Industry string `json:"industry,omitempty"`
}

// ResearchSummary is the research collaborator's view of an account.
type ResearchSummary struct {
	Score float64  `json:"score"`
	Facts []string `json:"facts,omitempty"`
}

// IntentAnalysis is the intent collaborator's view of an account.
type IntentAnalysis struct {
	Score     float64  `json:"score"`
	Signals   []string `json:"signals,omitempty"`
	Readiness string   `json:"readiness,omitempty"`
}
