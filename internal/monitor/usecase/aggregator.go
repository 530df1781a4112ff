package usecase

import (
	"context"
	"errors"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
)

// maxHistorySamples bounds the per-account total-score history ring used
// by windowed conditions, independent of the time-based retention.
const maxHistorySamples = 48

// aggregateSignals folds freshly observed signal increments into the
// account's cumulative state and recomputes velocity and trend. It
// returns the updated state.
func (uc *usecase) aggregateSignals(ctx context.Context, orgID, accountID string, deltas map[model.SignalCategory]float64) (*model.IntentMonitoringData, error) {
	state, err := uc.repo.Intent.Get(ctx, orgID, accountID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "internal.monitor.usecase.aggregateSignals: %v", err)
			return nil, err
		}
		state = model.NewIntentMonitoringData(accountID)
	}

	prevTotal := state.TotalScore()
	for category, inc := range deltas {
		state.Signals[category] += inc
	}

	now := uc.clock()
	total := state.TotalScore()
	state.Velocity = total - prevTotal
	state.Trend = uc.classifyTrend(state.Velocity)
	state.LastUpdated = now

	state.History = append(state.History, model.TotalSample{Total: total, At: now})
	state.History = trimHistory(state.History, now.Add(-uc.cfg.HistoryRetention))

	if err := uc.repo.Intent.Save(ctx, orgID, state); err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.aggregateSignals: %v", err)
		return nil, err
	}
	return state, nil
}

func (uc *usecase) classifyTrend(velocity float64) model.Trend {
	switch {
	case velocity > uc.cfg.TrendUpThreshold:
		return model.TrendIncreasing
	case velocity < uc.cfg.TrendDownThreshold:
		return model.TrendDecreasing
	default:
		return model.TrendStable
	}
}

func trimHistory(history []model.TotalSample, cutoff time.Time) []model.TotalSample {
	start := 0
	for start < len(history) && history[start].At.Before(cutoff) {
		start++
	}
	history = history[start:]
	if len(history) > maxHistorySamples {
		history = history[len(history)-maxHistorySamples:]
	}
	return history
}
