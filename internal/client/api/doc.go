// Package api is the HTTP collaborator of the blog client.
//
// # Overview
//
// The package provides:
//  1. Narrow, transport-agnostic contracts (AuthAPI, UserAPI, ThemeAPI,
//     PostAPI, and the aggregate Client) that services depend on.
//  2. HTTPClient, a JSON-over-HTTP implementation of the backend contract:
//     /usuarios, /temas and /postagens.
//
// # Error Handling
//
// Non-2xx responses and transport failures are mapped to sentinel errors
// callers match with errors.Is: ErrUnauthorized (401/403), ErrNotFound,
// ErrBadRequest, ErrConflict, ErrRateLimited, ErrUnavailable (network
// failures and 5xx). The concrete *StatusError is available via errors.As.
//
// # Authentication
//
// Authenticated calls read the token from a TokenSource at send time and put
// it in the Authorization header verbatim. Calls that need a token fail with
// ErrUnauthorized, without touching the network, when the source is empty.
package api
