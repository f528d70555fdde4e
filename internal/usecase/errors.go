package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrTransport covers network failures and non-2xx provider responses.
	ErrTransport = errors.New("provider request failed")
	// ErrEmptyResult is returned when the provider answers with zero results.
	ErrEmptyResult = errors.New("no data returned from provider")
	// ErrIncompleteData marks a provider payload missing required entries.
	ErrIncompleteData = errors.New("incomplete provider data")
)
