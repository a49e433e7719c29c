// Command cleanup-tokens deletes expired and revoked refresh tokens. It is
// intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktracker-backend/internal/app"
	"github.com/heartmarshall/tasktracker-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "cleanup-tokens")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	mailer, err := app.NewMailer(cfg.Email, logger)
	if err != nil {
		logger.Error("email transport", slog.String("error", err.Error()))
		os.Exit(1)
	}
	svcs := app.NewServices(cfg, app.NewRepos(pool), mailer, logger)

	if _, err := svcs.Auth.CleanupExpiredTokens(ctx); err != nil {
		logger.Error("cleanup tokens failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}
}
