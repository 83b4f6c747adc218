// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks operator input before it reaches the sync
// engine.
//
// A [Validator] receives the value and, optionally, the names of the fields
// the value may touch. Services inject validators and translate their
// sentinel errors into service errors.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates obj. fields, when given, restricts which record
	// fields obj may reference.
	Validate(ctx context.Context, obj any, fields ...string) error
}
