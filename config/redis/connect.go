package redis

import (
	"monitor-srv/config"
	pkgRedis "monitor-srv/pkg/redis"
)

// Connect establishes a Redis connection using the service configuration.
func Connect(cfg config.RedisConfig) (*pkgRedis.Client, error) {
	return pkgRedis.NewClient(pkgRedis.Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		Password:        cfg.Password,
		DB:              cfg.DB,
		UseTLS:          cfg.UseTLS,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
}

// Disconnect closes the Redis connection.
func Disconnect(client *pkgRedis.Client) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
