package httpapi

import (
	"context"

	"monitor-srv/internal/collaborator"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
)

type sequencerClient struct {
	client
}

// NewSequencer returns a Sequencer talking to the outreach service's
// JSON API.
func NewSequencer(l log.Logger, cfg Config) collaborator.Sequencer {
	return &sequencerClient{client: newClient(l, cfg)}
}

type startSequenceRequest struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Sequence  string `json:"sequence"`
}

func (s *sequencerClient) StartSequence(ctx context.Context, account model.Account, sequence string) error {
	req := startSequenceRequest{
		AccountID: account.ID,
		Name:      account.Name,
		Sequence:  sequence,
	}
	if err := s.postJSON(ctx, "/api/v1/sequences/start", req, nil); err != nil {
		s.l.Errorf(ctx, "internal.collaborator.httpapi.StartSequence: %v", err)
		return err
	}
	return nil
}
