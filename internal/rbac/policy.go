// Package rbac decides whether a caller may access a request path, based on
// an ordered route policy keyed by path pattern. Rules combine a role
// allow-list with optional subscription gating.
package rbac

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// DefaultPolicyYAML is the route policy compiled into the binary. It is used
// when no policy file is configured.
//
//go:embed policy.yaml
var DefaultPolicyYAML []byte

// Rule is the access requirement attached to a route pattern.
type Rule struct {
	Roles                      []domain.Role               `yaml:"roles"`
	RequiresActiveSubscription bool                        `yaml:"requires_active_subscription"`
	SubscriptionStatuses       []domain.SubscriptionStatus `yaml:"subscription_statuses"`
	SubscriptionTypes          []string                    `yaml:"subscription_types"`
}

// Route binds a path pattern to a rule. A pattern is either an exact path or
// a prefix followed by "*", which matches any suffix. Among wildcard routes a
// higher Priority wins; see NewMatcher for the full precedence order.
type Route struct {
	Pattern  string `yaml:"pattern"`
	Priority int    `yaml:"priority"`
	Rule     `yaml:",inline"`
}

// Policy is an ordered list of routes.
type Policy struct {
	Routes []Route `yaml:"routes"`
}

// ParsePolicy decodes a YAML policy document and validates role and status
// names.
func ParsePolicy(data []byte) (Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("unmarshal policy: %w", err)
	}
	if err := p.validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// LoadPolicy reads a policy from path, or returns the embedded default when
// path is empty.
func LoadPolicy(path string) (Policy, error) {
	if path == "" {
		return ParsePolicy(DefaultPolicyYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy %s: %w", path, err)
	}
	return ParsePolicy(data)
}

func (p Policy) validate() error {
	if len(p.Routes) == 0 {
		return fmt.Errorf("policy has no routes")
	}
	for i, r := range p.Routes {
		if r.Pattern == "" {
			return fmt.Errorf("route %d: empty pattern", i)
		}
		if len(r.Roles) == 0 {
			return fmt.Errorf("route %q: at least one role is required", r.Pattern)
		}
		for _, role := range r.Roles {
			if !role.IsValid() {
				return fmt.Errorf("route %q: unknown role %q", r.Pattern, role)
			}
		}
		for _, st := range r.SubscriptionStatuses {
			if !st.IsValid() {
				return fmt.Errorf("route %q: unknown subscription status %q", r.Pattern, st)
			}
		}
	}
	return nil
}
