// Command promote grants the admin role to an existing profile. It is used to
// bootstrap the first administrator; later changes go through the admin API.
//
// Usage:
//
//	promote --user=<uuid>
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/adapter/postgres"
	"github.com/cpdtrack/cpd-backend/internal/adapter/postgres/profile"
	"github.com/cpdtrack/cpd-backend/internal/app"
	"github.com/cpdtrack/cpd-backend/internal/config"
	"github.com/cpdtrack/cpd-backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "user id of the profile to promote")
	flag.Parse()

	userID, err := uuid.Parse(*user)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: promote --user=<uuid>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	p, err := profile.New(pool).UpdateRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Error("no profile for user", slog.String("user_id", userID.String()))
		} else {
			logger.Error("update role", slog.String("error", err.Error()))
		}
		pool.Close()
		os.Exit(1)
	}

	logger.Info("profile promoted to admin",
		slog.String("user_id", p.UserID.String()),
		slog.String("role", p.Role.String()),
	)
}
