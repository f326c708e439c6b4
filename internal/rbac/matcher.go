package rbac

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// Claims is the subset of the caller's identity claims the matcher reads.
type Claims struct {
	Role               domain.Role
	SubscriptionStatus domain.SubscriptionStatus
	SubscriptionPlan   string
}

// Reason explains a decision.
type Reason string

const (
	ReasonAllowed              Reason = "allowed"
	ReasonNoRule               Reason = "no_rule"
	ReasonRole                 Reason = "role"
	ReasonSubscriptionInactive Reason = "subscription_inactive"
	ReasonSubscriptionStatus   Reason = "subscription_status"
	ReasonSubscriptionType     Reason = "subscription_type"
)

// Decision is the outcome of matching a path against the policy.
type Decision struct {
	Allowed bool
	Pattern string // empty when no route matched
	Reason  Reason
}

type compiledRoute struct {
	Route
	re     *regexp.Regexp
	prefix string
	index  int
}

// Matcher evaluates paths against an immutable, pre-ordered policy.
type Matcher struct {
	exact      map[string]compiledRoute
	wildcards  []compiledRoute
	gateByPlan bool
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithSubscriptionGating toggles the subscription checks of every rule.
// When disabled only the role allow-list is enforced.
func WithSubscriptionGating(enabled bool) Option {
	return func(m *Matcher) { m.gateByPlan = enabled }
}

// NewMatcher compiles the policy. Precedence, highest first:
//
//  1. an exact pattern equal to the path
//  2. wildcard patterns by descending Priority
//  3. then by descending literal prefix length
//  4. then by declaration order
//
// Duplicate exact patterns are rejected.
func NewMatcher(p Policy, opts ...Option) (*Matcher, error) {
	m := &Matcher{
		exact:      make(map[string]compiledRoute),
		gateByPlan: true,
	}
	for _, opt := range opts {
		opt(m)
	}

	for i, r := range p.Routes {
		if !strings.Contains(r.Pattern, "*") {
			if _, dup := m.exact[r.Pattern]; dup {
				return nil, fmt.Errorf("duplicate route pattern %q", r.Pattern)
			}
			m.exact[r.Pattern] = compiledRoute{Route: r, prefix: r.Pattern, index: i}
			continue
		}

		re, err := compilePattern(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Pattern, err)
		}
		m.wildcards = append(m.wildcards, compiledRoute{
			Route:  r,
			re:     re,
			prefix: r.Pattern[:strings.Index(r.Pattern, "*")],
			index:  i,
		})
	}

	sort.SliceStable(m.wildcards, func(i, j int) bool {
		a, b := m.wildcards[i], m.wildcards[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if len(a.prefix) != len(b.prefix) {
			return len(a.prefix) > len(b.prefix)
		}
		return a.index < b.index
	})

	return m, nil
}

// compilePattern turns "/api/goals*" into ^/api/goals.*$ with every literal
// segment escaped.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.Compile("^" + strings.Join(parts, ".*") + "$")
}

// Lookup returns the route governing path, if any.
func (m *Matcher) Lookup(path string) (Route, bool) {
	if r, ok := m.exact[path]; ok {
		return r.Route, true
	}
	for _, r := range m.wildcards {
		if r.re.MatchString(path) {
			return r.Route, true
		}
	}
	return Route{}, false
}

// Decide evaluates the rule for path against the caller's claims.
// A path without a rule is denied.
func (m *Matcher) Decide(path string, c Claims) Decision {
	route, ok := m.Lookup(path)
	if !ok {
		return Decision{Reason: ReasonNoRule}
	}

	deny := func(reason Reason) Decision {
		return Decision{Pattern: route.Pattern, Reason: reason}
	}

	if c.Role == "" || !slices.Contains(route.Roles, c.Role) {
		return deny(ReasonRole)
	}

	if m.gateByPlan {
		if route.RequiresActiveSubscription && !c.SubscriptionStatus.IsActive() {
			return deny(ReasonSubscriptionInactive)
		}
		if len(route.SubscriptionStatuses) > 0 && !slices.Contains(route.SubscriptionStatuses, c.SubscriptionStatus) {
			return deny(ReasonSubscriptionStatus)
		}
		if len(route.SubscriptionTypes) > 0 && !slices.Contains(route.SubscriptionTypes, c.SubscriptionPlan) {
			return deny(ReasonSubscriptionType)
		}
	}

	return Decision{Allowed: true, Pattern: route.Pattern, Reason: ReasonAllowed}
}

// Allow is Decide reduced to a boolean.
func (m *Matcher) Allow(path string, c Claims) bool {
	return m.Decide(path, c).Allowed
}
