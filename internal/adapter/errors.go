// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors returned by the remote adapters. Callers match them with [errors.Is].
var (
	// ErrRemoteAuthFailed is returned when a call is still rejected with 401
	// after the token was refreshed once.
	ErrRemoteAuthFailed = errors.New("remote authentication failed")
	// ErrBatchTooLarge is returned before any network call when a bulk
	// operation exceeds [MaxBatchSize] records.
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
	// ErrRemoteUnavailable covers network failures, timeouts, 429 and 5xx.
	ErrRemoteUnavailable = errors.New("remote api unavailable")
	// ErrRemoteNotFound is returned for 404 responses.
	ErrRemoteNotFound = errors.New("remote object not found")
	// ErrRemoteBadRequest is returned for 400 responses.
	ErrRemoteBadRequest = errors.New("remote api rejected request")
	// ErrRemoteForbidden is returned for 403 responses.
	ErrRemoteForbidden = errors.New("remote api forbids operation")
	// ErrOAuthRejected is returned when the OAuth token endpoint refuses a grant.
	ErrOAuthRejected = errors.New("oauth grant rejected")

	// errUnauthorized marks a single 401 response; it never leaves the package.
	errUnauthorized = errors.New("unauthorized")
)
