// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the external CRM.
//
// [OAuthAdapter] covers the authorization-code, refresh and revoke endpoints.
// [RemoteAdapter] issues authenticated REST calls for the synchronized object
// types; it obtains tokens from a [TokenSource] and retries a call exactly once
// after a 401 with a refreshed token.
//
// HTTP status codes are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrRemoteNotFound] for 404).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-crm-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MaxBatchSize is the largest number of records a bulk call may carry.
const MaxBatchSize = 200

// TokenSource supplies access tokens for an owner. It is implemented by the
// credential service.
type TokenSource interface {
	GetValidToken(ctx context.Context, ownerID int64) (models.AccessToken, error)
	// RefreshToken replaces a token the remote side rejected. When another
	// caller already replaced stale, the current token is returned without
	// a second refresh.
	RefreshToken(ctx context.Context, stale models.AccessToken) (models.AccessToken, error)
}

// OAuthAdapter wraps the remote OAuth2 endpoints of one environment pair.
type OAuthAdapter interface {
	AuthorizeURL(env models.Environment, state string) (string, error)
	ExchangeCode(ctx context.Context, env models.Environment, code string) (models.TokenGrant, error)
	RefreshToken(ctx context.Context, env models.Environment, refreshToken string) (models.TokenGrant, error)
	Revoke(ctx context.Context, env models.Environment, token string) error
}

// RecordUpdate is one element of a bulk update.
type RecordUpdate struct {
	ID     string
	Fields models.Fields
}

// RemoteAdapter is the authenticated remote object API.
type RemoteAdapter interface {
	// Do performs a raw call relative to the versioned data API root and
	// decodes the JSON response into result when it is non-nil.
	Do(ctx context.Context, ownerID int64, req Request, result any) error

	GetRecord(ctx context.Context, ownerID int64, objectType models.ObjectType, id string) (models.RemoteRecord, error)
	CreateRecord(ctx context.Context, ownerID int64, objectType models.ObjectType, fields models.Fields) (string, error)
	UpdateRecord(ctx context.Context, ownerID int64, objectType models.ObjectType, id string, fields models.Fields) error
	DeleteRecord(ctx context.Context, ownerID int64, objectType models.ObjectType, id string) error

	// QueryModifiedSince returns up to limit records modified at or after since,
	// newest first.
	QueryModifiedSince(ctx context.Context, ownerID int64, objectType models.ObjectType, since time.Time, limit int) ([]models.RemoteRecord, error)
	// QueryRecent returns the limit most recently modified records.
	QueryRecent(ctx context.Context, ownerID int64, objectType models.ObjectType, limit int) ([]models.RemoteRecord, error)
	Search(ctx context.Context, ownerID int64, objectType models.ObjectType, term string) ([]models.RemoteRecord, error)

	CreateRecords(ctx context.Context, ownerID int64, objectType models.ObjectType, records []models.Fields) ([]models.RecordResult, error)
	UpdateRecords(ctx context.Context, ownerID int64, objectType models.ObjectType, updates []RecordUpdate) ([]models.RecordResult, error)
}
