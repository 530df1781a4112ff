package httpapi

import (
	"context"

	"monitor-srv/internal/collaborator"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
)

type contentClient struct {
	client
}

// NewContentGenerator returns a ContentGenerator talking to the content
// service's JSON API.
func NewContentGenerator(l log.Logger, cfg Config) collaborator.ContentGenerator {
	return &contentClient{client: newClient(l, cfg)}
}

type generateRequest struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Domain    string `json:"domain,omitempty"`
	Approach  string `json:"approach"`
}

type generateResponse struct {
	Content string `json:"content"`
}

func (c *contentClient) Generate(ctx context.Context, account model.Account, approach string) (string, error) {
	req := generateRequest{
		AccountID: account.ID,
		Name:      account.Name,
		Domain:    account.Domain,
		Approach:  approach,
	}
	var out generateResponse
	if err := c.postJSON(ctx, "/api/v1/content/generate", req, &out); err != nil {
		c.l.Errorf(ctx, "internal.collaborator.httpapi.Generate: %v", err)
		return "", err
	}
	return out.Content, nil
}
