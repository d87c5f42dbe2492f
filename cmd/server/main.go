package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"scorepulse/internal/config"
	"scorepulse/internal/logging"
	"scorepulse/internal/server"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// A local .env is a development convenience; absence is the normal
	// production case.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: config.ServiceName,
		Version: cfg.Log.Version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
