// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared across the service:
// context keys, HMAC signing, keyed locks, token encryption, HTTP response
// writing, the resty client wrapper, JWT verification and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key under which the authenticated owner identifier
// is stored by the auth middleware.
var OwnerIDCtxKey = contextKey("ownerID")

// OperatorCtxKey is the key under which the operator identity (the token
// subject as a string) is stored. It is recorded as the resolver of conflicts.
var OperatorCtxKey = contextKey("operator")

// GetOwnerIDFromContext retrieves the owner identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetOwnerIDFromContext(ctx context.Context) (int64, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(int64)
	return ownerID, ok
}

// GetOperatorFromContext retrieves the operator identity from the context.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok && operator != ""
}

// WithOwner returns a copy of ctx carrying ownerID and operator.
func WithOwner(ctx context.Context, ownerID int64, operator string) context.Context {
	ctx = context.WithValue(ctx, OwnerIDCtxKey, ownerID)
	return context.WithValue(ctx, OperatorCtxKey, operator)
}
