package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Run wires handlers, starts the background services and the HTTP
// listener, then blocks until a shutdown signal arrives.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.Run: map handlers: %v", err)
		return err
	}

	// Alert stream hub.
	go srv.hub.Run()

	// Monitoring scheduler.
	if err := srv.monitorUC.Start(ctx); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.Run: start scheduler: %v", err)
		return err
	}

	// Retention sweeper, when archiving is enabled.
	if srv.sweeper != nil {
		go srv.sweeper.Run()
	}

	go func() {
		addr := fmt.Sprintf("%s:%d", srv.cfg.Server.Host, srv.cfg.Server.Port)
		if err := srv.gin.Run(addr); err != nil {
			srv.logger.Errorf(ctx, "internal.httpserver.Run: %v", err)
		}
	}()
	srv.logger.Infof(ctx, "internal.httpserver.Run: listening on port %d", srv.cfg.Server.Port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	srv.logger.Infof(ctx, "internal.httpserver.Run: received %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.monitorUC.Stop(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.Run: stop scheduler: %v", err)
	}
	if srv.sweeper != nil {
		if err := srv.sweeper.Shutdown(shutdownCtx); err != nil {
			srv.logger.Errorf(ctx, "internal.httpserver.Run: stop sweeper: %v", err)
		}
	}
	if err := srv.hub.Shutdown(shutdownCtx); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.Run: stop hub: %v", err)
	}

	return nil
}
