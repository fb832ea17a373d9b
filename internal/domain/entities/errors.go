package entities

import "errors"

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid authentication token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyUsed   = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)

// Integration errors
var (
	ErrIntegrationNotLinked  = errors.New("google calendar integration not linked")
	ErrProviderNotConfigured = errors.New("oauth provider is not configured")
)

// Upstream errors
var (
	// ErrUpstream marks transient provider failures: transport errors and
	// 5xx responses. Retry loops treat anything not wrapping it as permanent.
	ErrUpstream = errors.New("upstream provider failure")
)
