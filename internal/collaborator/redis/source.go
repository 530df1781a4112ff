package redis

import (
	"context"
	"fmt"
	"strconv"

	"monitor-srv/internal/collaborator"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
	pkgRedis "monitor-srv/pkg/redis"
)

const signalKeyPattern = "signals:%s:%s"

type signalSource struct {
	l     log.Logger
	redis *pkgRedis.Client
}

// NewSignalSource returns a SignalSource backed by Redis hashes. Upstream
// signal producers increment fields of signals:{org}:{account}; each
// observation drains the hash so an increment is consumed exactly once.
func NewSignalSource(l log.Logger, redis *pkgRedis.Client) collaborator.SignalSource {
	return &signalSource{
		l:     l,
		redis: redis,
	}
}

func (s *signalSource) ObserveDeltas(ctx context.Context, orgID, accountID string) (map[model.SignalCategory]float64, error) {
	key := fmt.Sprintf(signalKeyPattern, orgID, accountID)

	// Read and delete atomically so a producer increment landing between
	// the two commands is never lost.
	pipe := s.redis.GetClient().TxPipeline()
	getCmd := pipe.HGetAll(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		s.l.Errorf(ctx, "internal.collaborator.redis.ObserveDeltas: %v", err)
		return nil, err
	}

	raw := getCmd.Val()
	deltas := make(map[model.SignalCategory]float64, len(raw))
	for field, val := range raw {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			s.l.Warnf(ctx, "internal.collaborator.redis.ObserveDeltas: non-numeric value %q for %s", val, field)
			continue
		}
		// Negative increments violate the producer contract. Clamp here so
		// the aggregator only ever sees non-negative deltas.
		if v < 0 {
			v = 0
		}
		deltas[model.SignalCategory(field)] = v
	}

	return deltas, nil
}
