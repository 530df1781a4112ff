package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"monitor-srv/internal/alertstream"
	"monitor-srv/internal/archive"
	"monitor-srv/internal/collaborator/discordnotify"
	"monitor-srv/internal/collaborator/httpapi"
	collabRedis "monitor-srv/internal/collaborator/redis"
	"monitor-srv/internal/middleware"
	monitorHTTP "monitor-srv/internal/monitor/delivery/http"
	"monitor-srv/internal/monitor/repository/memory"
	monitorUC "monitor-srv/internal/monitor/usecase"
)

const api = "/api/v1"

// maxStreamConnections bounds open alert-stream sockets across all orgs.
const maxStreamConnections = 1000

// mapHandlers builds the monitoring core and attaches all routes.
func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health endpoints.
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI.
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stores.
	repos := memory.New(srv.logger)

	// Collaborators.
	collab := monitorUC.Collaborators{
		Signals:     collabRedis.NewSignalSource(srv.logger, srv.redis),
		Directory:   collabRedis.NewDirectory(srv.logger, srv.redis),
		Research:    httpapi.NewResearchProvider(srv.logger, httpapi.Config{BaseURL: srv.cfg.Collaborators.ResearchBaseURL, Timeout: srv.cfg.Collaborators.Timeout}),
		Content:     httpapi.NewContentGenerator(srv.logger, httpapi.Config{BaseURL: srv.cfg.Collaborators.ContentBaseURL, Timeout: srv.cfg.Collaborators.Timeout}),
		Sequencer:   httpapi.NewSequencer(srv.logger, httpapi.Config{BaseURL: srv.cfg.Collaborators.SequencerBaseURL, Timeout: srv.cfg.Collaborators.Timeout}),
		Competitors: httpapi.NewCompetitorFeed(srv.logger, httpapi.Config{BaseURL: srv.cfg.Collaborators.CompetitorBaseURL, Timeout: srv.cfg.Collaborators.Timeout}),
		Notifier:    discordnotify.New(srv.logger, srv.discord),
	}

	// Live alert stream.
	srv.hub = alertstream.NewHub(srv.logger, maxStreamConnections)
	streamHandler := alertstream.NewHandler(srv.logger, srv.hub, srv.cfg.Environment.Name)
	srv.gin.GET("/ws/alerts", streamHandler.Subscribe)

	// Engine.
	srv.monitorUC = monitorUC.New(srv.logger, srv.cfg.Engine, monitorUC.Repositories{
		Trigger:  repos.Trigger,
		Alert:    repos.Alert,
		Intent:   repos.Intent,
		Activity: repos.Activity,
	}, collab, srv.hub)

	// Retention sweeper.
	if srv.cfg.Archive.Enabled && srv.minio != nil {
		sink, err := archive.NewMinIOSink(context.Background(), srv.logger, srv.minio, srv.cfg.Archive.Bucket)
		if err != nil {
			return err
		}
		srv.sweeper = archive.NewSweeper(srv.logger, srv.cfg.Archive, sink, repos.Alert, repos.Intent)
	}

	// Monitor API.
	monitorGroup := srv.gin.Group(api + "/monitor")
	monitorHTTP.MapMonitorRoutes(monitorGroup, monitorHTTP.New(srv.logger, srv.monitorUC))

	return nil
}
