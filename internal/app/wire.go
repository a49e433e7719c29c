package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres/category"
	entryrepo "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres/entry"
	listrepo "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres/list"
	reminderrepo "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres/reminder"
	tokenrepo "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres/user"
	iauth "github.com/heartmarshall/tasktracker-backend/internal/auth"
	"github.com/heartmarshall/tasktracker-backend/internal/config"
	"github.com/heartmarshall/tasktracker-backend/internal/email"
	"github.com/heartmarshall/tasktracker-backend/internal/service/auth"
	"github.com/heartmarshall/tasktracker-backend/internal/service/category"
	"github.com/heartmarshall/tasktracker-backend/internal/service/entry"
	"github.com/heartmarshall/tasktracker-backend/internal/service/export"
	"github.com/heartmarshall/tasktracker-backend/internal/service/list"
	"github.com/heartmarshall/tasktracker-backend/internal/service/reminder"
	"github.com/heartmarshall/tasktracker-backend/internal/service/share"
	"github.com/heartmarshall/tasktracker-backend/internal/service/user"
)

// Repos holds the PostgreSQL repositories.
type Repos struct {
	Users      *userrepo.Repo
	Tokens     *tokenrepo.Repo
	Lists      *listrepo.Repo
	Categories *categoryrepo.Repo
	Entries    *entryrepo.Repo
	Reminders  *reminderrepo.Repo
	Audit      *auditrepo.Repo
	Tx         *postgres.TxManager
}

// NewRepos builds every repository over pool.
func NewRepos(pool *pgxpool.Pool) *Repos {
	return &Repos{
		Users:      userrepo.New(pool),
		Tokens:     tokenrepo.New(pool),
		Lists:      listrepo.New(pool),
		Categories: categoryrepo.New(pool),
		Entries:    entryrepo.New(pool),
		Reminders:  reminderrepo.New(pool),
		Audit:      auditrepo.New(pool),
		Tx:         postgres.NewTxManager(pool),
	}
}

// Services is the fully wired service layer.
type Services struct {
	Auth     *auth.Service
	User     *user.Service
	List     *list.Service
	Category *category.Service
	Entry    *entry.Service
	Export   *export.Service
	Share    *share.Service
	Reminder *reminder.Service
	JWT      *iauth.JWTManager
	Mailer   email.Sender
}

// NewServices wires services over repos. The mailer is shared by reminders
// and report sharing.
func NewServices(cfg *config.Config, r *Repos, mailer email.Sender, logger *slog.Logger) *Services {
	jwt := iauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	exportSvc := export.NewService(logger, r.Lists, r.Categories, r.Entries)

	return &Services{
		Auth:     auth.NewService(logger, r.Users, r.Tokens, r.Lists, r.Categories, r.Tx, jwt, cfg.Auth),
		User:     user.NewService(logger, r.Users, r.Audit, r.Tx),
		List:     list.NewService(logger, r.Lists, r.Audit, r.Tx),
		Category: category.NewService(logger, r.Categories, r.Lists, r.Audit, r.Tx),
		Entry:    entry.NewService(logger, r.Entries, r.Categories, r.Lists, r.Audit, r.Tx),
		Export:   exportSvc,
		Share: share.NewService(logger, exportSvc, mailer, share.Config{
			From:           cfg.Share.From,
			DefaultSubject: cfg.Share.DefaultSubject,
			MaxRecipients:  cfg.Share.MaxRecipients,
		}),
		Reminder: reminder.NewService(logger, r.Reminders, r.Users, mailer, r.Audit, r.Tx, reminder.Config{
			Window:      cfg.Reminder.Window,
			Dedupe:      cfg.Reminder.Dedupe,
			AppURL:      cfg.Reminder.AppURL,
			Subject:     cfg.Reminder.Subject,
			From:        cfg.Email.From,
			Concurrency: cfg.Reminder.Concurrency,
		}),
		JWT:    jwt,
		Mailer: mailer,
	}
}
