package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/promptwire/agent/internal/config"
	"github.com/promptwire/agent/internal/intent"
	"github.com/promptwire/agent/internal/logger"
	"github.com/promptwire/agent/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	path := os.Getenv("AGENT_CONFIG")
	if path == "" {
		path = "agent.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	intent.Init()

	logg := logger.New(cfg.Log.Level)
	if err := server.Run(ctx, cfg, logg); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
