// Package common contains shared constants and sentinel errors used across
// carstorage components.
package common

const (
	// AuthorizationHeaderName carries the session token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix is the only authorization scheme used by client and server.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates client log lines with server log lines.
	RequestIDHeaderName = "X-Request-ID"

	// ScopeAll is the sentinel car scope that requests every owner's records.
	ScopeAll = "all"
)
