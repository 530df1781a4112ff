package minio

import (
	"context"

	"monitor-srv/config"
	pkgMinIO "monitor-srv/pkg/minio"
)

// Connect establishes a MinIO connection using the service configuration.
func Connect(ctx context.Context, cfg config.MinIOConfig) (pkgMinIO.MinIO, error) {
	return pkgMinIO.New(ctx, pkgMinIO.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
	})
}

// Disconnect closes the MinIO connection.
func Disconnect(client pkgMinIO.MinIO) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
