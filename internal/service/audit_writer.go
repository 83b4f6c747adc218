// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

// auditWriter is the single writer of each owner's audit log. Appends and
// the last-successful-sync lookup are serialized per owner.
type auditWriter struct {
	repo  store.AuditRepository
	locks *utils.KeyedMutex[int64]
	now   func() time.Time
}

func newAuditWriter(repo store.AuditRepository, now func() time.Time) *auditWriter {
	return &auditWriter{repo: repo, locks: utils.NewKeyedMutex[int64](), now: now}
}

// Write appends entry. Failures are logged and returned; the change the
// entry describes has already happened and is not rolled back.
func (w *auditWriter) Write(ctx context.Context, entry models.SyncAuditEntry) (models.SyncAuditEntry, error) {
	unlock := w.locks.Lock(entry.OwnerID)
	defer unlock()

	if entry.ProcessedAt.IsZero() {
		entry.ProcessedAt = w.now()
	}

	saved, err := w.repo.Append(ctx, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditWriter.Write").
			Int64("owner_id", entry.OwnerID).
			Str("object_type", string(entry.ObjectType)).
			Str("remote_id", entry.RemoteObjectID).
			Str("status", string(entry.Status)).
			Msg("failed to append audit entry")
		return models.SyncAuditEntry{}, err
	}
	return saved, nil
}

func (w *auditWriter) LastSuccessfulSync(ctx context.Context, ownerID int64) (time.Time, error) {
	unlock := w.locks.Lock(ownerID)
	defer unlock()

	return w.repo.LastSuccessfulSync(ctx, ownerID)
}

func (w *auditWriter) Resolve(ctx context.Context, ownerID, entryID int64, resolution models.Resolution) (models.SyncAuditEntry, error) {
	unlock := w.locks.Lock(ownerID)
	defer unlock()

	return w.repo.MarkResolved(ctx, ownerID, entryID, resolution)
}
