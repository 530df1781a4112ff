package minio

import (
	"context"
	"sync"

	miniogo "github.com/minio/minio-go/v7"
)

// Config is the connection configuration for the MinIO client.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// MinIO is the object-store client used by the archive sink.
type MinIO interface {
	// EnsureBucket creates the bucket if it does not exist yet.
	EnsureBucket(ctx context.Context, bucketName string) error
	// PutObject writes data under bucket/object with the given content type.
	PutObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error
	// HealthCheck verifies the connection is still usable.
	HealthCheck(ctx context.Context) error
	// Close marks the client as disconnected. The underlying client manages
	// its own connection pool, so no explicit shutdown is required.
	Close() error
}

type implMinIO struct {
	minioClient *miniogo.Client
	config      Config
	mu          sync.RWMutex
	connected   bool
}
