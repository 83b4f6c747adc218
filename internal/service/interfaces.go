// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService owns the OAuth lifecycle of every owner's connection.
// It is the [adapter.TokenSource] of the remote adapter.
type CredentialService interface {
	adapter.TokenSource

	AuthorizationURL(ctx context.Context, ownerID int64, env models.Environment) (string, error)
	IssueCredential(ctx context.Context, ownerID int64, code, state string) (models.Credential, error)

	// Refresh runs the refresh_token grant under the owner lock. Every
	// failure returns ErrRefreshFailed. Only a grant the authorization
	// server rejects (invalid or revoked refresh token) deactivates the
	// credential and requires the operator to re-authorize; network errors
	// and 5xx answers keep it active for the next attempt.
	Refresh(ctx context.Context, ownerID int64) (models.AccessToken, error)

	Revoke(ctx context.Context, ownerID int64) error
	Status(ctx context.Context, ownerID int64) (models.ConnectionStatus, error)
}

// SyncEngine reconciles local records with the remote CRM.
type SyncEngine interface {
	PerformFullSync(ctx context.Context, ownerID int64) (models.SyncResult, error)
	PerformIncrementalSync(ctx context.Context, ownerID int64) (models.SyncResult, error)

	// ApplyRemoteChange runs the inbound handler for a single remote object.
	// It returns an empty status when nothing had to change.
	ApplyRemoteChange(ctx context.Context, ownerID int64, objectType models.ObjectType, remoteID string, change models.ChangeType) (models.Status, error)

	// PushLocal writes fields to a linked remote record and stores them locally
	// as the synced state.
	PushLocal(ctx context.Context, ownerID int64, objectType models.ObjectType, remoteID string, fields models.Fields) error
	// OverwriteLocal stores fields on the linked local record as the synced state.
	OverwriteLocal(ctx context.Context, ownerID int64, objectType models.ObjectType, remoteID string, fields models.Fields) error
}

// WebhookService verifies and dispatches push notifications.
type WebhookService interface {
	VerifySignature(payload []byte, signature, timestamp string) models.VerificationResult
	ParseEvents(payload []byte) ([]models.WebhookEvent, error)
	ProcessWebhook(ctx context.Context, event models.WebhookEvent) (models.WebhookOutcome, error)
}

// ConflictService is the operator-facing view of the audit log.
type ConflictService interface {
	ListConflicts(ctx context.Context, ownerID int64) ([]models.ConflictRecord, error)
	ResolveConflict(ctx context.Context, ownerID, entryID int64, req models.ResolveRequest, resolvedBy string) (models.SyncAuditEntry, error)
	AuditLog(ctx context.Context, filter models.AuditFilter) ([]models.SyncAuditEntry, error)
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
