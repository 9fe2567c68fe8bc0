// Package session owns the client's single source of truth for "who is
// logged in".
//
// A Store holds the current Session and moves through three states:
// anonymous, authenticating (a login request is in flight) and authenticated.
// Observers registered with Subscribe are called synchronously after every
// committed transition, before the call that caused it returns, so a route
// guard can redirect before the caller's next step runs.
package session

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/blogpessoal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the in-memory record of the authenticated user. The zero value
// is the anonymous session. Token is non-empty exactly when authenticated.
type Session struct {
	UserID      int64
	DisplayName string
	Username    string
	Photo       string
	Token       string
	// ExpiresAt is zero when the token carries no expiry.
	ExpiresAt time.Time
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Expired reports whether the token's expiry has passed at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// TokenExpiry reads the exp claim of a JWT, with or without the "Bearer "
// prefix. The signature is not checked: the backend is the authority, the
// client only uses the value to stop sending a token it knows is stale.
// Opaque tokens yield the zero time.
func TokenExpiry(token string) time.Time {
	raw := strings.TrimSpace(strings.TrimPrefix(token, common.BearerPrefix))
	if raw == "" {
		return time.Time{}
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
