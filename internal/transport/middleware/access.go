package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/rbac"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

type accessDecider interface {
	Decide(path string, c rbac.Claims) rbac.Decision
}

// Access enforces the route policy. Requests without an identity get 401,
// denied requests get 403. Routes missing from the policy are denied.
func Access(decider accessDecider, metrics *Metrics, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := ctxutil.IdentityFromCtx(r.Context())
			if !ok {
				metrics.observeDecision("unauthenticated")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			d := decider.Decide(r.URL.Path, rbac.Claims{
				Role:               domain.Role(identity.Role),
				SubscriptionStatus: domain.SubscriptionStatus(identity.SubscriptionStatus),
				SubscriptionPlan:   identity.SubscriptionPlan,
			})
			metrics.observeDecision(string(d.Reason))

			if !d.Allowed {
				logger.WarnContext(r.Context(), "access denied",
					slog.String("path", r.URL.Path),
					slog.String("pattern", d.Pattern),
					slog.String("reason", string(d.Reason)),
					slog.String("user_id", identity.UserID.String()),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
