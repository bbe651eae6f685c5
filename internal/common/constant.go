// Package common contains constants and small helpers shared by the client
// packages.
package common

// RequestIDHeaderName carries the per-request correlation id on outbound
// REST calls.
const RequestIDHeaderName = "X-Request-ID"

// Storage keys of the session record.
const (
	// SessionKey holds the current user record written by the login flow.
	SessionKey = "currentUser"
	// LegacySessionKey holds the record written by the older admin console.
	LegacySessionKey = "userData"
)

// Page names used for navigation.
const (
	PageLogin   = "login"
	PageLanding = "index"
)
