package httpapi

import (
	"context"

	"monitor-srv/internal/collaborator"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
)

type researchClient struct {
	client
}

// NewResearchProvider returns a ResearchProvider talking to the research
// service's JSON API.
func NewResearchProvider(l log.Logger, cfg Config) collaborator.ResearchProvider {
	return &researchClient{client: newClient(l, cfg)}
}

type researchRequest struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Domain    string `json:"domain,omitempty"`
	Industry  string `json:"industry,omitempty"`
}

func (r *researchClient) Research(ctx context.Context, account model.Account) (model.ResearchSummary, error) {
	var out model.ResearchSummary
	req := researchRequest{
		AccountID: account.ID,
		Name:      account.Name,
		Domain:    account.Domain,
		Industry:  account.Industry,
	}
	if err := r.postJSON(ctx, "/api/v1/research", req, &out); err != nil {
		r.l.Errorf(ctx, "internal.collaborator.httpapi.Research: %v", err)
		return model.ResearchSummary{}, err
	}
	return out, nil
}

func (r *researchClient) IntentAnalysis(ctx context.Context, account model.Account) (model.IntentAnalysis, error) {
	var out model.IntentAnalysis
	req := researchRequest{
		AccountID: account.ID,
		Name:      account.Name,
		Domain:    account.Domain,
		Industry:  account.Industry,
	}
	if err := r.postJSON(ctx, "/api/v1/intent-analysis", req, &out); err != nil {
		r.l.Errorf(ctx, "internal.collaborator.httpapi.IntentAnalysis: %v", err)
		return model.IntentAnalysis{}, err
	}
	return out, nil
}
