// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNotConnected        = errors.New("owner has no active crm connection")
	ErrInvalidState        = errors.New("invalid oauth state")
	ErrTokenExchangeFailed = errors.New("authorization code exchange failed")
	ErrRefreshFailed       = errors.New("token refresh failed")

	ErrConflictNotFound    = errors.New("conflict not found")
	ErrUnsupportedStrategy = errors.New("unsupported resolution strategy")

	ErrWebhookVerificationFailed = errors.New("webhook verification failed")
	ErrInvalidWebhookPayload     = errors.New("invalid webhook payload")

	ErrSyncInProgress = errors.New("sync already running for owner")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidDataProvided   = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
