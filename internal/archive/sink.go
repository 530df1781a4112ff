package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
	pkgMinIO "monitor-srv/pkg/minio"
)

// Sink is the cold store records are written to before eviction.
type Sink interface {
	StoreAlert(ctx context.Context, alert model.MonitoringAlert) error
	StoreIntent(ctx context.Context, orgID string, data model.IntentMonitoringData) error
}

type minioSink struct {
	l      log.Logger
	client pkgMinIO.MinIO
	bucket string
}

// NewMinIOSink returns a Sink writing JSON objects to a MinIO bucket.
// The bucket is created on first use if missing.
func NewMinIOSink(ctx context.Context, l log.Logger, client pkgMinIO.MinIO, bucket string) (Sink, error) {
	if err := client.EnsureBucket(ctx, bucket); err != nil {
		return nil, err
	}
	return &minioSink{
		l:      l,
		client: client,
		bucket: bucket,
	}, nil
}

func (s *minioSink) StoreAlert(ctx context.Context, alert model.MonitoringAlert) error {
	object := fmt.Sprintf("alerts/%s/%s/%s.json",
		alert.OrgID, alert.CreatedAt.UTC().Format("2006/01/02"), alert.ID)
	return s.put(ctx, object, alert)
}

func (s *minioSink) StoreIntent(ctx context.Context, orgID string, data model.IntentMonitoringData) error {
	object := fmt.Sprintf("intent/%s/%s/%s.json",
		orgID, data.LastUpdated.UTC().Format("2006/01/02"), data.AccountID)
	return s.put(ctx, object, data)
}

func (s *minioSink) put(ctx context.Context, object string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.client.PutObject(ctx, s.bucket, object, payload, "application/json"); err != nil {
		s.l.Errorf(ctx, "internal.archive.put: %v", err)
		return err
	}
	return nil
}
