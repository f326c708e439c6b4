package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/cpdtrack/cpd-backend/migrations"
)

// NewMigrator opens a database/sql handle on dsn and returns a goose provider
// over the embedded migrations. The caller closes the returned *sql.DB.
func NewMigrator(dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open migration connection: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, db, nil
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	provider, db, err := NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	if len(results) == 0 {
		logger.Debug("schema up to date")
	}
	return nil
}
