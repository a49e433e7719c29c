// Command seeder bulk-inserts accomplishments for one user from a YAML file,
// creating any categories the file names that do not exist yet.
//
//	seeder --user-email ana@example.com --file seed.yaml [--date 2026-02-12] [--dry-run]
//
// Flags fall back to SEEDER_* environment variables. Database access comes
// from the regular server configuration; no credentials are read from the
// seed file. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktracker-backend/internal/app"
	"github.com/heartmarshall/tasktracker-backend/internal/app/seeder"
	"github.com/heartmarshall/tasktracker-backend/internal/config"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags seeder.Config

	cmd := &cobra.Command{
		Use:          "seeder",
		Short:        "Insert accomplishments for a user from a YAML file",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := seeder.LoadConfig()
			if err != nil {
				return err
			}
			merge(cmd, cfg, flags)
			return run(cmd.Context(), *cfg)
		},
	}

	cmd.Flags().StringVar(&flags.UserEmail, "user-email", "", "email of the user who owns the entries")
	cmd.Flags().StringVar(&flags.File, "file", "seed.yaml", "path to the seed YAML file")
	cmd.Flags().StringVar(&flags.Date, "date", "", "default entry date (YYYY-MM-DD); overrides the file's date")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "run every insert and roll back")
	return cmd
}

// merge applies flags the user set explicitly over environment values.
func merge(cmd *cobra.Command, cfg *seeder.Config, flags seeder.Config) {
	if cmd.Flags().Changed("user-email") {
		cfg.UserEmail = flags.UserEmail
	}
	if cmd.Flags().Changed("file") {
		cfg.File = flags.File
	}
	if cmd.Flags().Changed("date") {
		cfg.Date = flags.Date
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = flags.DryRun
	}
}

func run(ctx context.Context, cfg seeder.Config) error {
	if strings.TrimSpace(cfg.UserEmail) == "" {
		return fmt.Errorf("--user-email is required")
	}

	doc, err := seeder.LoadDocument(cfg.File)
	if err != nil {
		return err
	}

	appCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load app config: %w", err)
	}
	logger := app.NewLogger(appCfg.Log, "seeder")

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	repos := app.NewRepos(pool)
	pipeline := seeder.NewPipeline(logger, repos.Users, repos.Lists, repos.Categories, repos.Entries, repos.Tx)

	res, err := pipeline.Run(ctx, cfg, doc)
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		return err
	}

	mode := "inserted"
	if res.DryRun {
		mode = "would insert (dry run)"
	}
	fmt.Printf("%s %d entries into list %s", mode, res.Inserted, res.ListID)
	if len(res.CategoriesCreated) > 0 {
		fmt.Printf("; new categories: %s", strings.Join(res.CategoriesCreated, ", "))
	}
	fmt.Println()
	return nil
}
