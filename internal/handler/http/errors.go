// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoOwnerInContext is returned by operator handlers reached without
	// passing the auth middleware.
	ErrNoOwnerInContext = errors.New("no authenticated owner in request context")

	// ErrRouteNotFound is written for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")
)
