package main

import (
	"context"
	"fmt"

	"monitor-srv/config"
	cfgMinIO "monitor-srv/config/minio"
	cfgRedis "monitor-srv/config/redis"
	"monitor-srv/internal/httpserver"
	"monitor-srv/pkg/discord"
	"monitor-srv/pkg/log"
	pkgMinIO "monitor-srv/pkg/minio"
)

// @Name Monitor API
// @description Signal-monitoring and trigger/alert engine for sales intelligence.
// @version 1
// @host localhost:8082
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	// Redis backs the signal source and the account directory.
	redisClient, err := cfgRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer cfgRedis.Disconnect(redisClient)
	logger.Infof(ctx, "Redis connected to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// MinIO is only needed when the retention sweeper is on.
	var minioClient pkgMinIO.MinIO
	if cfg.Archive.Enabled {
		minioClient, err = cfgMinIO.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
			return
		}
		defer cfgMinIO.Disconnect(minioClient)
		logger.Infof(ctx, "MinIO connected to %s", cfg.MinIO.Endpoint)
	}

	// Discord carries team notifications and crash reports. Missing
	// webhook config disables both instead of failing startup.
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize Discord: %v", err)
			return
		}
	} else {
		logger.Warn(ctx, "Discord webhook not configured, notifications disabled")
	}

	srv := httpserver.New(logger, *cfg, redisClient, minioClient, discordClient)
	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
	}
}
