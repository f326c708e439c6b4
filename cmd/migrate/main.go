// Command migrate applies or inspects the database schema.
//
// Usage:
//
//	migrate [up|down|status]
//
// The DSN comes from the same configuration as the server. Exit codes:
// 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/cpdtrack/cpd-backend/internal/app"
	"github.com/cpdtrack/cpd-backend/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, command, cfg.Database.DSN, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, command, dsn string, logger *slog.Logger) error {
	if command == "up" {
		return app.Migrate(ctx, dsn, logger)
	}

	provider, db, err := app.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logger.Info("migration rolled back",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
		)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			applied := "-"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-8d %-10s %-25s %s\n", s.Source.Version, s.State, applied, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
