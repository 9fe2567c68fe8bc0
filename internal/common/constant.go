// Package common contains constants and helpers shared by the client and the
// development backend.
package common

const (
	// AuthorizationHeaderName carries the session token, verbatim as the
	// backend issued it (it already includes the "Bearer " scheme).
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix is the scheme prefix of issued tokens.
	BearerPrefix = "Bearer "

	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8
)
