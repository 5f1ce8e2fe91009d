package model

import "errors"

var (
	// ErrInvalidDate indicates a begin or end argument that is not an ISO-8601 date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRange indicates a begin date in the future or an end date before the begin date.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrAuth indicates the intranet rejected the client credentials or the token.
	ErrAuth = errors.New("authentication failed")

	// ErrNotFound indicates the login does not resolve to a known user.
	ErrNotFound = errors.New("user not found")

	// ErrTransport covers network failures and any other non-2xx answer.
	ErrTransport = errors.New("intra api request failed")

	// ErrMalformedDuration indicates a per-day value that is not H:MM:SS.ffffff.
	ErrMalformedDuration = errors.New("malformed duration")

	ErrMissingLogin       = errors.New("user login is required")
	ErrMissingCredentials = errors.New("INTRA_CLIENT_ID and INTRA_CLIENT_SECRET must be set")
)
