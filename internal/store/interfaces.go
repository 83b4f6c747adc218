// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-crm-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository persists OAuth credentials. Tokens are encrypted
// before they reach the database.
type CredentialRepository interface {
	// ReplaceActive deactivates every active credential of the owner and
	// inserts cred as the only active one, atomically.
	ReplaceActive(ctx context.Context, cred models.Credential) (models.Credential, error)
	// FindActive returns the owner's active credential or [ErrCredentialNotFound].
	FindActive(ctx context.Context, ownerID int64) (models.Credential, error)
	// UpdateTokens rewrites the tokens of an active credential in place.
	UpdateTokens(ctx context.Context, cred models.Credential) error
	// TouchLastUsed records that the credential was just used.
	TouchLastUsed(ctx context.Context, credentialID int64, at time.Time) error
	// Deactivate marks the owner's active credential inactive with reason.
	Deactivate(ctx context.Context, ownerID int64, reason string, at time.Time) error
	// ListActiveOwners returns every owner holding an active credential.
	ListActiveOwners(ctx context.Context) ([]int64, error)
}

// AuditRepository is the append-only sync audit log.
type AuditRepository interface {
	Append(ctx context.Context, entry models.SyncAuditEntry) (models.SyncAuditEntry, error)
	FindByID(ctx context.Context, ownerID, entryID int64) (models.SyncAuditEntry, error)
	List(ctx context.Context, filter models.AuditFilter) ([]models.SyncAuditEntry, error)
	// MarkResolved moves a CONFLICT entry to SUCCESS. It returns
	// [ErrAuditEntryNotFound] if the entry is missing, owned by someone else
	// or no longer in CONFLICT.
	MarkResolved(ctx context.Context, ownerID, entryID int64, resolution models.Resolution) (models.SyncAuditEntry, error)
	// LastSuccessfulSync returns the processed_at of the newest SYNC SUCCESS
	// marker, or the zero time when there is none.
	LastSuccessfulSync(ctx context.Context, ownerID int64) (time.Time, error)
	// FindOwnersByRemoteID returns the owners that have ever referenced the
	// remote object.
	FindOwnersByRemoteID(ctx context.Context, remoteObjectID string) ([]int64, error)
}

// LocalRecordRepository is the local side of the synchronization.
type LocalRecordRepository interface {
	FindByID(ctx context.Context, ownerID int64, id string) (models.LocalRecord, error)
	FindByRemoteID(ctx context.Context, ownerID int64, objectType models.ObjectType, remoteID string) (models.LocalRecord, error)
	// FindByNaturalKey matches unlinked records case-insensitively.
	FindByNaturalKey(ctx context.Context, ownerID int64, objectType models.ObjectType, key string) (models.LocalRecord, error)
	Create(ctx context.Context, record models.LocalRecord) (models.LocalRecord, error)
	// ApplyRemote stores the record as reconciled with remote state: its fields,
	// synced snapshot, link and LastSyncedAt are written as given and
	// updated_at is set to at.
	ApplyRemote(ctx context.Context, record models.LocalRecord, at time.Time) error
	// MarkSynced links the record to remoteID and stores the pushed snapshot.
	// The record is considered synced as of its updated_at value observed
	// by the caller, so edits made meanwhile keep it pending.
	MarkSynced(ctx context.Context, record models.LocalRecord, remoteID string, synced models.Fields) error
	// ListNeedingSync returns records that are unlinked or modified after
	// their last sync, oldest first.
	ListNeedingSync(ctx context.Context, ownerID int64, objectType models.ObjectType, limit uint64) ([]models.LocalRecord, error)
}
