package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktracker-backend/internal/config"
	"github.com/heartmarshall/tasktracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/tasktracker-backend/internal/transport/rest"
)

// Run starts the HTTP API and blocks until SIGINT/SIGTERM or ctx is done,
// then drains in-flight requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "server")
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("email_provider", cfg.Email.Provider),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Server.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	mailer, err := NewMailer(cfg.Email, logger)
	if err != nil {
		return err
	}
	svcs := NewServices(cfg, NewRepos(pool), mailer, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, pool, svcs, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler builds the REST router over wired services.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, s *Services, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Pinger: pool},
		),
		Auth:       rest.NewAuthHandler(s.Auth, logger),
		Profile:    rest.NewProfileHandler(s.User, logger),
		Lists:      rest.NewListHandler(s.List, logger),
		Categories: rest.NewCategoryHandler(s.Category, logger),
		Entries:    rest.NewEntryHandler(s.Entry, logger),
		Reports:    rest.NewReportHandler(s.Export, s.Share, logger),
		Reminders:  rest.NewReminderHandler(s.Reminder, s.Reminder, cfg.Reminder.TriggerSecret, logger),
	}

	return rest.NewRouter(handlers, rest.RouterConfig{
		Logger:     logger,
		Validator:  s.Auth,
		CORS:       cfg.CORS,
		Limiter:    limiter,
		AuthLimit:  cfg.RateLimit.AuthPerMinute,
		ShareLimit: cfg.Share.PerMinute,
	})
}
