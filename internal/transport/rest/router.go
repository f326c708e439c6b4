package rest

import (
	"net/http"

	"github.com/cpdtrack/cpd-backend/internal/transport/middleware"
)

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Health       *HealthHandler
	Profile      *ProfileHandler
	Activity     *ActivityHandler
	Goal         *GoalHandler
	Tag          *TagHandler
	Summary      *SummaryHandler
	Subscription *SubscriptionHandler
	Feedback     *FeedbackHandler
}

// RouterOptions controls the optional parts of the route table.
type RouterOptions struct {
	// Access guards every /api route. Nil leaves them open.
	Access middleware.Middleware
	// Metrics labels requests by route pattern. Nil disables instrumentation.
	Metrics *middleware.Metrics
	// MetricsHandler is mounted at MetricsPath when both are set.
	MetricsHandler http.Handler
	MetricsPath    string
	// BillingEnabled mounts the payment webhook and the admin resync.
	BillingEnabled bool
	// Files serves locally stored evidence under /files/.
	Files http.Handler
}

// NewRouter builds the route table. Public routes live on the root mux;
// everything under /api/ passes through opts.Access first.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	root := http.NewServeMux()
	api := http.NewServeMux()

	handle := func(mux *http.ServeMux, pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, opts.Metrics.Instrument(pattern, fn))
	}

	handle(root, "GET /live", h.Health.Live)
	handle(root, "GET /ready", h.Health.Ready)
	handle(root, "GET /health", h.Health.Health)
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		root.Handle("GET "+opts.MetricsPath, opts.MetricsHandler)
	}
	if opts.Files != nil {
		root.Handle("GET /files/", http.StripPrefix("/files", opts.Files))
	}

	handle(api, "GET /api/profile", h.Profile.Get)
	handle(api, "PUT /api/profile", h.Profile.Put)

	handle(api, "GET /api/activities", h.Activity.List)
	handle(api, "POST /api/activities", h.Activity.Create)
	handle(api, "GET /api/activities/{id}", h.Activity.Get)
	handle(api, "PATCH /api/activities/{id}", h.Activity.Update)
	handle(api, "DELETE /api/activities/{id}", h.Activity.Delete)
	handle(api, "PUT /api/activities/{id}/tags", h.Tag.SetActivityTags)
	handle(api, "POST /api/activities/{id}/evidence", h.Activity.UploadEvidence)

	handle(api, "GET /api/goals", h.Goal.List)
	handle(api, "POST /api/goals", h.Goal.Create)
	handle(api, "GET /api/goals/{id}", h.Goal.Get)
	handle(api, "PATCH /api/goals/{id}", h.Goal.Update)
	handle(api, "DELETE /api/goals/{id}", h.Goal.Delete)
	handle(api, "PUT /api/goals/{id}/tags", h.Tag.SetGoalTags)

	handle(api, "GET /api/tags", h.Tag.List)

	handle(api, "GET /api/dashboard", h.Summary.Dashboard)
	handle(api, "GET /api/reports/{year}", h.Summary.Report)
	handle(api, "GET /api/reports/{year}/pdf", h.Summary.ReportPDF)

	handle(api, "GET /api/subscription", h.Subscription.Get)
	handle(api, "POST /api/feedback", h.Feedback.Create)

	handle(api, "GET /api/admin/profiles", h.Profile.List)
	handle(api, "PUT /api/admin/profiles/{userId}/role", h.Profile.SetRole)
	handle(api, "GET /api/admin/feedback", h.Feedback.List)

	if opts.BillingEnabled {
		handle(root, "POST /webhooks/stripe", h.Subscription.Webhook)
		handle(api, "POST /api/admin/subscriptions/{userId}/sync", h.Subscription.Sync)
	}

	var guarded http.Handler = api
	if opts.Access != nil {
		guarded = opts.Access(api)
	}
	root.Handle("/api/", guarded)

	return root
}
