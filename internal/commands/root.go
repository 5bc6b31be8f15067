// Package commands implements the spenttime command line interface. It is
// the stand-in request layer: it resolves the acting user, invokes the app
// operations, and renders their results as plain text.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/NBISweden/redmine-spent-time/internal/app"
	"github.com/NBISweden/redmine-spent-time/internal/config"
	"github.com/NBISweden/redmine-spent-time/internal/domain/auth"
	"github.com/NBISweden/redmine-spent-time/internal/domain/issue"
	"github.com/NBISweden/redmine-spent-time/internal/domain/report"
	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/NBISweden/redmine-spent-time/internal/domain/visibility"
	"github.com/NBISweden/redmine-spent-time/internal/sqlite"
)

var actingLogin string

var rootCmd = &cobra.Command{
	Use:   "spenttime",
	Short: "Report and log spent time across projects",
	Long: `spenttime resolves which time entries a user may see, renders
aggregated reports over a date window, and logs new entries against
project issues.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&actingLogin, "user", "", "login of the acting user")
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(issuesCmd)
	rootCmd.AddCommand(seedCmd)
}

// runtime bundles everything a subcommand needs.
type runtime struct {
	cfg      config.Config
	logger   *slog.Logger
	db       *sqlite.DB
	app      *app.App
	users    *sqlite.UserRepository
	projects *sqlite.ProjectRepository
	issues   *sqlite.IssueRepository
	entries  *sqlite.TimeEntryRepository
	perms    *sqlite.PermissionRepository
}

func setup() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := migrateIfNeeded(db); err != nil {
		db.Close()
		return nil, err
	}

	users := sqlite.NewUserRepository(db)
	projects := sqlite.NewProjectRepository(db)
	issues := sqlite.NewIssueRepository(db)
	entries := sqlite.NewTimeEntryRepository(db)
	perms := sqlite.NewPermissionRepository(db)

	authorizer := auth.NewService(perms, logger)
	resolver := visibility.NewResolver(users, projects, authorizer, logger)
	reports := report.NewService(entries, logger)
	entrySvc := timeentry.NewService(entries, projects, issues, authorizer, logger)
	issueSvc := issue.NewService(issues, projects, logger)

	application := app.New(app.Config{
		Visibility: resolver,
		Reports:    reports,
		Entries:    entrySvc,
		Issues:     issueSvc,
		ReportDays: cfg.Report.DefaultDays,
		Logger:     logger,
	})

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		app:      application,
		users:    users,
		projects: projects,
		issues:   issues,
		entries:  entries,
		perms:    perms,
	}, nil
}

func (rt *runtime) close() {
	rt.db.Close()
}

// actor resolves the --user flag to a stored user.
func (rt *runtime) actor(ctx context.Context) (*user.User, error) {
	if actingLogin == "" {
		return nil, fmt.Errorf("--user is required")
	}
	u, err := rt.users.GetByLogin(ctx, actingLogin)
	if err != nil {
		return nil, fmt.Errorf("unknown user %q", actingLogin)
	}
	return u, nil
}

func migrateIfNeeded(db *sqlite.DB) error {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='users'`).Scan(&count)
	if err != nil {
		return fmt.Errorf("inspecting schema: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := db.RunMigrations(); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// rangeFromFlags builds the caller's current display range, falling back to
// the configured default window for missing bounds.
func rangeFromFlags(rt *runtime, from, to string) (report.Range, error) {
	rng := report.DefaultRange(time.Now(), rt.cfg.Report.DefaultDays)
	if from != "" {
		d, err := time.Parse(timeentry.DateLayout, from)
		if err != nil {
			return report.Range{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", from)
		}
		rng.From = d
	}
	if to != "" {
		d, err := time.Parse(timeentry.DateLayout, to)
		if err != nil {
			return report.Range{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", to)
		}
		rng.To = d
	}
	return rng, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
