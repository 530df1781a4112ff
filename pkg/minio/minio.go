package minio

import (
	"bytes"
	"context"
	"fmt"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// New creates a MinIO client and verifies connectivity by listing buckets.
func New(ctx context.Context, cfg Config) (MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}

	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	m := &implMinIO{
		minioClient: client,
		config:      cfg,
	}

	if _, err := client.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to minio: %w", err)
	}
	m.connected = true

	return m, nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if bucketName == "" {
		return fmt.Errorf("bucket name is required")
	}

	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", bucketName, err)
	}
	if exists {
		return nil
	}

	if err := m.minioClient.MakeBucket(ctx, bucketName, miniogo.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", bucketName, err)
	}
	return nil
}

func (m *implMinIO) PutObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error {
	if bucketName == "" || objectName == "" {
		return fmt.Errorf("bucket and object names are required")
	}

	_, err := m.minioClient.PutObject(ctx, bucketName, objectName,
		bytes.NewReader(data), int64(len(data)),
		miniogo.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to put object %s/%s: %w", bucketName, objectName, err)
	}
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return fmt.Errorf("minio: not connected")
	}
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio health check failed: %w", err)
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}
