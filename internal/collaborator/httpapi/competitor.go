package httpapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"monitor-srv/internal/collaborator"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
)

type competitorClient struct {
	client
}

// NewCompetitorFeed returns a CompetitorFeed talking to the competitor
// news service's JSON API.
func NewCompetitorFeed(l log.Logger, cfg Config) collaborator.CompetitorFeed {
	return &competitorClient{client: newClient(l, cfg)}
}

type activityRecord struct {
	Kind             string    `json:"kind"`
	Description      string    `json:"description"`
	Impact           string    `json:"impact"`
	AffectedAccounts []string  `json:"affected_accounts,omitempty"`
	DetectedAt       time.Time `json:"detected_at"`
	Source           string    `json:"source"`
}

type activitiesResponse struct {
	Activities []activityRecord `json:"activities"`
}

func (c *competitorClient) Activities(ctx context.Context, competitor, orgID string) ([]model.CompetitorActivity, error) {
	path := fmt.Sprintf("/api/v1/competitors/%s/activities?org_id=%s",
		url.PathEscape(competitor), url.QueryEscape(orgID))

	var out activitiesResponse
	if err := c.getJSON(ctx, path, &out); err != nil {
		c.l.Errorf(ctx, "internal.collaborator.httpapi.Activities: %v", err)
		return nil, err
	}

	activities := make([]model.CompetitorActivity, 0, len(out.Activities))
	for _, rec := range out.Activities {
		detectedAt := rec.DetectedAt
		if detectedAt.IsZero() {
			detectedAt = time.Now()
		}
		activities = append(activities, model.CompetitorActivity{
			Competitor:       competitor,
			Kind:             model.ActivityKind(rec.Kind),
			Description:      rec.Description,
			Impact:           model.ImpactTier(rec.Impact),
			AffectedAccounts: rec.AffectedAccounts,
			DetectedAt:       detectedAt,
			Source:           rec.Source,
		})
	}
	return activities, nil
}
