package usecase

import (
	"context"
	"errors"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor"
	"monitor-srv/internal/monitor/repository"
)

func (uc *usecase) GetAlerts(ctx context.Context, sc model.Scope, ip monitor.GetAlertsInput) (monitor.GetAlertsOutput, error) {
	alerts, pag, err := uc.repo.Alert.Get(ctx, sc, repository.GetAlertOptions{
		UnacknowledgedOnly: ip.Filter.UnacknowledgedOnly,
		PaginateQuery:      ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.GetAlerts: %v", err)
		return monitor.GetAlertsOutput{}, err
	}
	return monitor.GetAlertsOutput{
		Alerts:    alerts,
		Paginator: pag,
	}, nil
}

// AcknowledgeAlert marks an alert handled by the calling user.
// Acknowledging an unknown id or an already acknowledged alert is a
// no-op; the first acknowledger stays on record.
func (uc *usecase) AcknowledgeAlert(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Alert.Acknowledge(ctx, id, sc.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		uc.l.Errorf(ctx, "internal.monitor.usecase.AcknowledgeAlert: %v", err)
		return err
	}
	return nil
}

// RecordAlertAction appends a follow-up to an acknowledged alert's log.
func (uc *usecase) RecordAlertAction(ctx context.Context, sc model.Scope, ip monitor.RecordAlertActionInput) error {
	err := uc.repo.Alert.AppendAction(ctx, ip.AlertID, model.AlertAction{
		Action:  ip.Action,
		UserID:  sc.UserID,
		TakenAt: uc.clock(),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return monitor.ErrAlertNotFound
		case errors.Is(err, repository.ErrNotAcknowledged):
			return monitor.ErrAlertNotAcknowledged
		}
		uc.l.Errorf(ctx, "internal.monitor.usecase.RecordAlertAction: %v", err)
		return err
	}
	return nil
}
