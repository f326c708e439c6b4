// Command devtoken prints a signed bearer token for local development
// against a server sharing the same AUTH_JWT_SECRET.
//
// Usage:
//
//	devtoken --user=<uuid> [--role=admin] [--sub-status=active] [--plan=Pro] [--ttl=24h]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/auth"
	"github.com/cpdtrack/cpd-backend/internal/config"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

func main() {
	user := flag.String("user", "", "user id (random when empty)")
	email := flag.String("email", "dev@example.com", "email claim")
	role := flag.String("role", string(domain.RoleOptometrist), "optometrist or admin")
	status := flag.String("sub-status", string(domain.SubscriptionActive), "subscription status claim")
	plan := flag.String("plan", "", "subscription plan claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if !domain.Role(*role).IsValid() {
		fmt.Fprintf(os.Stderr, "invalid role %q\n", *role)
		os.Exit(1)
	}

	userID := uuid.New()
	if *user != "" {
		parsed, err := uuid.Parse(*user)
		if err != nil {
			log.Fatalf("parse user id: %v", err)
		}
		userID = parsed
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).IssueToken(ctxutil.Identity{
		UserID:             userID,
		Email:              *email,
		Role:               *role,
		SubscriptionStatus: *status,
		SubscriptionPlan:   *plan,
	}, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
