// Package server assembles all HTTP handlers and starts the server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/promptwire/agent/internal/config"
	"github.com/promptwire/agent/internal/handler"
	"github.com/promptwire/agent/internal/session"
	"github.com/promptwire/agent/internal/wire"
	"github.com/promptwire/agent/internal/wireframe"
)

// Run starts the HTTP server with all routes registered and blocks until ctx
// is canceled or the listener fails.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	compiler := wireframe.NewCompiler(wireframe.WithMaxColumns(cfg.Layout.MaxColumns))
	ah := handler.NewAgentHandler(compiler)

	r := chi.NewRouter()
	r.Use(handler.Recovery(log))
	r.Use(handler.Logging(log))
	r.Use(handler.CORS)

	// Health check
	r.Get("/", ah.Health)
	r.Get("/healthz", ah.Health)

	// Read-only contract surfaces
	r.Get("/v1/lexicon", ah.Lexicon)
	r.Get("/v1/components/{type}", ah.ComponentTemplate)

	// Write endpoints, gated when an API key is configured
	r.Group(func(r chi.Router) {
		r.Use(handler.BearerAuth(cfg.APIKey))
		r.Post("/interpret", ah.Interpret)
		r.Post("/specify-wireframe", ah.SpecifyWireframe)
	})

	// WebSocket live channel (30 min idle, 24 hr max sessions)
	sessions := session.NewManager(24*time.Hour, 30*time.Minute)
	wsHandler := wire.NewHandler(sessions, compiler, log)
	r.Get("/ws", wsHandler.ServeHTTP)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("starting server", "addr", addr, "auth", cfg.AuthEnabled())

	server := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	return server.ListenAndServe()
}
