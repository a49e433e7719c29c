// Command send-reminders runs one reminder evaluation pass and prints the
// JSON report to stdout. It is meant to be invoked by an external scheduler
// every few minutes, as an alternative to POST /internal/reminders/run.
//
// Exit codes: 0 = pass completed (individual sends may have failed),
// 1 = the pass could not run.
package main

import (
	"context"
	"encoding/json"
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

	logger := app.NewLogger(cfg.Log, "send-reminders")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
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

	report, runErr := svcs.Reminder.Run(ctx, time.Now())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Error("write report", slog.String("error", err.Error()))
	}

	if runErr != nil {
		logger.Error("reminder pass failed", slog.String("error", runErr.Error()))
		pool.Close()
		os.Exit(1)
	}
}
