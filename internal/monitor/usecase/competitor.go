package usecase

import (
	"context"
	"fmt"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
)

// scanCompetitor pulls fresh activities for one competitor, records them,
// and raises an alert for each high-impact one. This path bypasses the
// trigger store entirely.
func (uc *usecase) scanCompetitor(ctx context.Context, orgID, competitor string) {
	activities, err := uc.collab.Competitors.Activities(ctx, competitor, orgID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.scanCompetitor: %v", err)
		return
	}
	if len(activities) == 0 {
		return
	}

	if err := uc.repo.Activity.Append(ctx, orgID, activities); err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.scanCompetitor: %v", err)
	}

	for _, activity := range activities {
		if activity.Impact != model.ImpactHigh {
			continue
		}
		uc.createAlert(ctx, orgID, repository.CreateAlertOptions{
			Severity:         model.AlertSeverityHigh,
			Title:            fmt.Sprintf("Competitor Alert: %s", competitor),
			Description:      activity.Description,
			AffectedAccounts: activity.AffectedAccounts,
			SuggestedActions: competitorRecommendations(activity.Kind),
		})
	}
}

// competitorRecommendations is the fixed playbook per activity kind.
func competitorRecommendations(kind model.ActivityKind) []string {
	switch kind {
	case model.ActivityProductLaunch:
		return []string{
			"Review battle cards against the new offering",
			"Brief account teams on updated positioning",
		}
	case model.ActivityPricingChange:
		return []string{
			"Compare new pricing with current proposals",
			"Prepare value-based counter messaging",
		}
	case model.ActivityMarketExpansion:
		return []string{
			"Identify overlapping target accounts",
			"Accelerate outreach in the contested segment",
		}
	case model.ActivityCustomerWin:
		return []string{
			"Check for shared prospects with the won customer",
			"Collect differentiation proof points",
		}
	case model.ActivityFundingRound:
		return []string{
			"Expect increased competitor sales capacity",
			"Prioritize at-risk renewals for early engagement",
		}
	default:
		return []string{"Review competitor activity with the sales team"}
	}
}
