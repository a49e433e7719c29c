package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/config"
	"github.com/heartmarshall/tasktracker-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Lists      *ListHandler
	Categories *CategoryHandler
	Entries    *EntryHandler
	Reports    *ReportHandler
	Reminders  *ReminderHandler
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterConfig carries what the middleware chain needs.
type RouterConfig struct {
	Logger    *slog.Logger
	Validator tokenValidator
	CORS      config.CORSConfig
	// Limiter is optional; nil disables rate limiting.
	Limiter    *middleware.RateLimiter
	AuthLimit  int
	ShareLimit int
}

// NewRouter mounts all routes on a ServeMux and wraps it in the middleware
// chain Recovery, RequestID, Logger, CORS, Auth.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	authLimit := passthrough
	shareLimit := passthrough
	if cfg.Limiter != nil {
		if cfg.AuthLimit > 0 {
			authLimit = cfg.Limiter.Limit(cfg.AuthLimit)
		}
		if cfg.ShareLimit > 0 {
			shareLimit = cfg.Limiter.LimitBy(cfg.ShareLimit, middleware.ByUser)
		}
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /auth/refresh", authLimit(http.HandlerFunc(h.Auth.Refresh)))
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/profile", h.Profile.Get)
	mux.HandleFunc("PATCH /api/profile", h.Profile.Update)

	mux.HandleFunc("GET /api/lists", h.Lists.List)
	mux.HandleFunc("POST /api/lists", h.Lists.Create)
	mux.HandleFunc("PATCH /api/lists/{id}", h.Lists.Rename)
	mux.HandleFunc("DELETE /api/lists/{id}", h.Lists.Delete)

	mux.HandleFunc("GET /api/lists/{id}/categories", h.Categories.List)
	mux.HandleFunc("POST /api/lists/{id}/categories", h.Categories.Create)
	mux.HandleFunc("PUT /api/lists/{id}/categories/order", h.Categories.Reorder)
	mux.HandleFunc("PATCH /api/categories/{id}", h.Categories.Rename)
	mux.HandleFunc("DELETE /api/categories/{id}", h.Categories.Delete)

	mux.HandleFunc("GET /api/lists/{id}/entries", h.Entries.List)
	mux.HandleFunc("POST /api/lists/{id}/entries", h.Entries.Create)
	mux.HandleFunc("PATCH /api/entries/{id}", h.Entries.Move)
	mux.HandleFunc("DELETE /api/entries/{id}", h.Entries.Delete)

	mux.HandleFunc("GET /api/lists/{id}/export.md", h.Reports.Markdown)
	mux.Handle("POST /api/share", shareLimit(http.HandlerFunc(h.Reports.Share)))

	mux.HandleFunc("GET /api/reminders", h.Reminders.Get)
	mux.HandleFunc("PUT /api/reminders", h.Reminders.Save)
	mux.HandleFunc("DELETE /api/reminders", h.Reminders.Delete)
	mux.HandleFunc("GET /api/reminders/timezones", h.Reminders.Timezones)
	mux.HandleFunc("POST /internal/reminders/run", h.Reminders.Trigger)

	return middleware.Chain(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID,
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(cfg.Validator),
	)(mux)
}

func passthrough(next http.Handler) http.Handler { return next }
