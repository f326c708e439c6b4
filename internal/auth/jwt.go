// Package auth verifies the signed tokens issued by the external identity
// provider and turns their claims into a request identity.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/pkg/ctxutil"
)

var (
	errEmptyToken  = errors.New("token is empty")
	errMissingRole = errors.New("missing role claim")
)

// JWTManager validates HS256 tokens from the identity provider. It can also
// mint tokens with the same claims layout, which tests and local tooling use.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// identityClaims is the claims bundle carried by provider tokens.
type identityClaims struct {
	jwt.RegisteredClaims
	Email              string `json:"email,omitempty"`
	Role               string `json:"role,omitempty"`
	SubscriptionStatus string `json:"subscription_status,omitempty"`
	SubscriptionPlan   string `json:"subscription_plan,omitempty"`
}

// IssueToken signs a token for id that expires after ttl.
func (m *JWTManager) IssueToken(id ctxutil.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:              id.Email,
		Role:               id.Role,
		SubscriptionStatus: id.SubscriptionStatus,
		SubscriptionPlan:   id.SubscriptionPlan,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a provider token and returns the
// identity it asserts. Tokens without a known role are rejected.
func (m *JWTManager) ValidateToken(_ context.Context, tokenString string) (ctxutil.Identity, error) {
	if tokenString == "" {
		return ctxutil.Identity{}, errEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return ctxutil.Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return ctxutil.Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}
	if userID == uuid.Nil {
		return ctxutil.Identity{}, fmt.Errorf("empty subject")
	}

	if claims.Role == "" {
		return ctxutil.Identity{}, errMissingRole
	}
	if !domain.Role(claims.Role).IsValid() {
		return ctxutil.Identity{}, fmt.Errorf("unknown role %q", claims.Role)
	}

	if claims.SubscriptionStatus != "" && !domain.SubscriptionStatus(claims.SubscriptionStatus).IsValid() {
		return ctxutil.Identity{}, fmt.Errorf("unknown subscription status %q", claims.SubscriptionStatus)
	}

	return ctxutil.Identity{
		UserID:             userID,
		Email:              claims.Email,
		Role:               claims.Role,
		SubscriptionStatus: claims.SubscriptionStatus,
		SubscriptionPlan:   claims.SubscriptionPlan,
	}, nil
}
