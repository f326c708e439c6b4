package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/cpdtrack/cpd-backend/internal/adapter/billing"
	"github.com/cpdtrack/cpd-backend/internal/adapter/postgres"
	activityrepo "github.com/cpdtrack/cpd-backend/internal/adapter/postgres/activity"
	feedbackrepo "github.com/cpdtrack/cpd-backend/internal/adapter/postgres/feedback"
	goalrepo "github.com/cpdtrack/cpd-backend/internal/adapter/postgres/goal"
	profilerepo "github.com/cpdtrack/cpd-backend/internal/adapter/postgres/profile"
	subscriptionrepo "github.com/cpdtrack/cpd-backend/internal/adapter/postgres/subscription"
	tagrepo "github.com/cpdtrack/cpd-backend/internal/adapter/postgres/tag"
	"github.com/cpdtrack/cpd-backend/internal/adapter/storage"
	"github.com/cpdtrack/cpd-backend/internal/auth"
	"github.com/cpdtrack/cpd-backend/internal/config"
	"github.com/cpdtrack/cpd-backend/internal/rbac"
	"github.com/cpdtrack/cpd-backend/internal/service/activity"
	"github.com/cpdtrack/cpd-backend/internal/service/dashboard"
	"github.com/cpdtrack/cpd-backend/internal/service/feedback"
	"github.com/cpdtrack/cpd-backend/internal/service/goal"
	"github.com/cpdtrack/cpd-backend/internal/service/profile"
	"github.com/cpdtrack/cpd-backend/internal/service/report"
	"github.com/cpdtrack/cpd-backend/internal/service/subscription"
	"github.com/cpdtrack/cpd-backend/internal/service/tag"
	"github.com/cpdtrack/cpd-backend/internal/transport/middleware"
	"github.com/cpdtrack/cpd-backend/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations when enabled, wires the services and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	store, closeStore, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("open evidence storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("close evidence storage", slog.String("error", err.Error()))
		}
	}()

	handler, cleanup, err := newHandler(cfg, pool, store, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newHandler wires repositories, services and the HTTP middleware stack on
// top of an open pool and evidence store. cleanup stops background workers.
func newHandler(cfg *config.Config, pool *pgxpool.Pool, store storage.EvidenceStore, logger *slog.Logger) (http.Handler, func(), error) {
	policy, err := rbac.LoadPolicy(cfg.Access.PolicyPath)
	if err != nil {
		return nil, nil, err
	}
	matcher, err := rbac.NewMatcher(policy, rbac.WithSubscriptionGating(cfg.Access.EnforceSubscriptions))
	if err != nil {
		return nil, nil, err
	}

	// Repositories
	tx := postgres.NewTxManager(pool)
	activities := activityrepo.New(pool)
	goals := goalrepo.New(pool)
	profiles := profilerepo.New(pool)
	tags := tagrepo.New(pool)
	subs := subscriptionrepo.New(pool)
	feedbackRepo := feedbackrepo.New(pool)
	linker := tag.NewLinker(tags)

	// Services
	activitySvc := activity.NewService(logger, activities, profiles, linker, store, tx)
	goalSvc := goal.NewService(logger, goals, profiles, linker, tx)
	tagSvc := tag.NewService(logger, tags, activities, goals, tx)
	profileSvc := profile.NewService(logger, profiles)
	dashboardSvc := dashboard.NewService(logger, activities, goals, profiles, cfg.CPD)
	reportSvc := report.NewService(logger, activities, goals, profiles, cfg.CPD)
	feedbackSvc := feedback.NewService(logger, feedbackRepo)

	var subscriptionSvc *subscription.Service
	if cfg.Billing.Enabled() {
		subscriptionSvc = subscription.NewService(logger, subs, billing.New(cfg.Billing, logger))
	} else {
		logger.Info("billing disabled: payment webhook and resync are not mounted")
		subscriptionSvc = subscription.NewService(logger, subs, nil)
	}

	// Metrics
	var (
		metrics        *middleware.Metrics
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = middleware.NewMetrics(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	var files http.Handler
	if local, ok := store.(*storage.LocalStore); ok {
		files = local.Handler()
	}

	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Probe{Name: "database", Check: pool.Ping},
			rest.Probe{Name: "storage", Check: store.Ping},
		),
		Profile:      rest.NewProfileHandler(profileSvc, logger),
		Activity:     rest.NewActivityHandler(activitySvc, cfg.Storage.MaxUploadBytes, logger),
		Goal:         rest.NewGoalHandler(goalSvc, logger),
		Tag:          rest.NewTagHandler(tagSvc, logger),
		Summary:      rest.NewSummaryHandler(dashboardSvc, reportSvc, logger),
		Subscription: rest.NewSubscriptionHandler(subscriptionSvc, logger),
		Feedback:     rest.NewFeedbackHandler(feedbackSvc, logger),
	}

	router := rest.NewRouter(handlers, rest.RouterOptions{
		Access:         middleware.Access(matcher, metrics, logger),
		Metrics:        metrics,
		MetricsHandler: metricsHandler,
		MetricsPath:    cfg.Metrics.Path,
		BillingEnabled: cfg.Billing.Enabled(),
		Files:          files,
	})

	limiter := middleware.NewRateLimiter(rateLimitCleanup)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
		middleware.Logger(logger),
		limiter.Limit(cfg.Access.RateLimitPerMinute),
	)(router)

	return handler, limiter.Stop, nil
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
