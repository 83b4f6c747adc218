// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing or weak application secrets.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRemoteConfigs indicates an incomplete OAuth client registration
	// or non-positive remote call limits.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidWebhookConfigs indicates a missing webhook secret or replay window.
	ErrInvalidWebhookConfigs = errors.New("invalid webhook configuration")
	// ErrInvalidSyncConfigs indicates non-positive sync tunables.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
