// Package common defines shared constants and sentinel errors used across
// the Blogify client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote-resource errors.
	ErrorNotFound = errors.New("not found")

	// Credential errors. ErrNoIdentity means no one is logged in locally;
	// ErrorUnauthorized means the backend rejected the supplied credential.
	ErrNoIdentity     = errors.New("not logged in")
	ErrorUnauthorized = errors.New("unauthorized")

	// Input errors (blank or malformed fields, caught before any request).
	ErrorValidation = errors.New("validation error")

	// Transport-level errors (network failure, undecodable response).
	ErrUnavailable = errors.New("server unavailable")
)
