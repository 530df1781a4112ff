package model

import "time"

// ActivityKind classifies a detected competitor event.
type ActivityKind string

const (
	ActivityProductLaunch   ActivityKind = "product_launch"
	ActivityPricingChange   ActivityKind = "pricing_change"
	ActivityMarketExpansion ActivityKind = "market_expansion"
	ActivityCustomerWin     ActivityKind = "customer_win"
	ActivityFundingRound    ActivityKind = "funding_round"
)

// ImpactTier grades how threatening a competitor activity is.
type ImpactTier string

const (
	ImpactHigh   ImpactTier = "high"
	ImpactMedium ImpactTier = "medium"
	ImpactLow    ImpactTier = "low"
)

// CompetitorActivity is one detected competitor event. The activity log
// is append-only, keyed by competitor name.
type CompetitorActivity struct {
	Competitor       string       `json:"competitor"`
	Kind             ActivityKind `json:"kind"`
	Description      string       `json:"description"`
	Impact           ImpactTier   `json:"impact"`
	AffectedAccounts []string     `json:"affected_accounts,omitempty"`
	DetectedAt       time.Time    `json:"detected_at"`
	Source           string       `json:"source"`
}
