package httpserver

import (
	"github.com/gin-gonic/gin"

	"monitor-srv/config"
	"monitor-srv/internal/alertstream"
	"monitor-srv/internal/archive"
	"monitor-srv/internal/monitor"
	"monitor-srv/pkg/discord"
	"monitor-srv/pkg/log"
	pkgMinIO "monitor-srv/pkg/minio"
	pkgRedis "monitor-srv/pkg/redis"
)

// HTTPServer owns the gin engine and the engine's background services.
// New only wires dependencies; Run (httpserver.go) starts everything.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	cfg    config.Config

	// Monitoring core, built in mapHandlers.
	monitorUC monitor.UseCase
	hub       *alertstream.Hub
	sweeper   *archive.Sweeper

	// External services.
	redis   *pkgRedis.Client
	minio   pkgMinIO.MinIO
	discord discord.IDiscord
}

// New creates the HTTP server. discordClient and minioClient may be nil
// when the corresponding integration is disabled.
func New(logger log.Logger, cfg config.Config, redis *pkgRedis.Client, minioClient pkgMinIO.MinIO, discordClient discord.IDiscord) *HTTPServer {
	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	return &HTTPServer{
		gin:     gin.New(),
		logger:  logger,
		cfg:     cfg,
		redis:   redis,
		minio:   minioClient,
		discord: discordClient,
	}
}
