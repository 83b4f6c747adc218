// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/models"
)

// ApplyRemoteChange fetches the current remote state of one object and runs
// it through the inbound handler. DELETE events and objects the remote side
// no longer returns are applied as deletions.
func (e *syncEngine) ApplyRemoteChange(ctx context.Context, ownerID int64, objectType models.ObjectType, remoteID string, change models.ChangeType) (models.Status, error) {
	desc, err := e.registry.Describe(objectType)
	if err != nil {
		return "", err
	}

	rec := models.RemoteRecord{ID: remoteID, Type: objectType, Deleted: true}
	if change != models.ChangeDelete {
		rec, err = e.remote.GetRecord(ctx, ownerID, objectType, remoteID)
		switch {
		case errors.Is(err, adapter.ErrRemoteNotFound):
			rec = models.RemoteRecord{ID: remoteID, Type: objectType, Deleted: true}
		case err != nil:
			e.fail(ctx, models.SyncAuditEntry{
				OwnerID:        ownerID,
				ObjectType:     objectType,
				RemoteObjectID: remoteID,
				Operation:      operationForChange(change),
				Direction:      models.Inbound,
			}, err)
			return models.StatusFailed, err
		}
	}

	_, status, err := e.applyInbound(ctx, ownerID, desc, rec)
	return status, err
}

func (e *syncEngine) applyInbound(ctx context.Context, ownerID int64, desc models.ObjectDescriptor, remote models.RemoteRecord) (models.Operation, models.Status, error) {
	unlock := e.objects.Lock(objectKey{ownerID: ownerID, remoteID: remote.ID})
	defer unlock()

	return e.reconcileInbound(ctx, ownerID, desc, remote)
}

// reconcileInbound applies one remote record to the local repository. The
// caller holds the object lock. An empty status means the local side already
// matched.
func (e *syncEngine) reconcileInbound(ctx context.Context, ownerID int64, desc models.ObjectDescriptor, remote models.RemoteRecord) (models.Operation, models.Status, error) {
	log := logger.FromContext(ctx)

	entry := models.SyncAuditEntry{
		OwnerID:        ownerID,
		ObjectType:     desc.Type,
		RemoteObjectID: remote.ID,
		Direction:      models.Inbound,
	}

	local, err := e.findLocal(ctx, ownerID, desc, remote)
	if errors.Is(err, store.ErrLocalRecordNotFound) {
		if remote.Deleted {
			return "", "", nil
		}
		return e.createLocal(ctx, ownerID, desc, remote, entry)
	}
	if err != nil {
		entry.Operation = models.OperationUpdate
		e.fail(ctx, entry, err)
		return entry.Operation, models.StatusFailed, err
	}
	entry.LocalObjectID = local.ID

	// a local delete that was not pushed yet wins; the outbound pass sends it
	if local.Deleted && local.RemoteID != "" && local.NeedsSync() {
		return "", "", nil
	}

	if remote.Deleted {
		if local.Deleted {
			return "", "", nil
		}
		entry.Operation = models.OperationDelete
		local.Deleted = true
		return e.applyLocal(ctx, desc, local, entry)
	}

	names := presentFields(remote.Fields, desc.Fields)
	incoming, conflicting := classify(local, remote, names, desc.Fields)
	linked := local.RemoteID == remote.ID && !local.Deleted
	if len(conflicting) > 0 {
		entry.Operation = models.OperationUpdate
		return e.recordConflict(ctx, desc, local, remote, conflicting, entry)
	}
	if len(incoming) == 0 && linked {
		return "", "", nil
	}

	merged := local.Fields.Clone()
	for _, n := range incoming {
		merged[n] = remote.Fields[n]
	}
	synced := local.SyncedFields.Clone()
	for _, n := range names {
		synced[n] = remote.Fields[n]
	}

	local.Fields = merged
	local.SyncedFields = synced
	local.RemoteID = remote.ID
	local.Deleted = false
	if desc.NaturalKey != "" {
		local.NaturalKey = naturalKey(merged, desc)
	}

	entry.Operation = models.OperationUpdate
	log.Debug().Str("local_id", local.ID).Str("remote_id", remote.ID).Strs("fields", incoming).Msg("applying remote changes")
	return e.applyLocal(ctx, desc, local, entry)
}

// findLocal matches a remote record by its remote link first and then, for
// records not linked yet, by the type's natural key.
func (e *syncEngine) findLocal(ctx context.Context, ownerID int64, desc models.ObjectDescriptor, remote models.RemoteRecord) (models.LocalRecord, error) {
	local, err := e.records.FindByRemoteID(ctx, ownerID, desc.Type, remote.ID)
	if err == nil || !errors.Is(err, store.ErrLocalRecordNotFound) {
		return local, err
	}

	key := naturalKey(remote.Fields, desc)
	if desc.NaturalKey == "" || key == "" {
		return models.LocalRecord{}, store.ErrLocalRecordNotFound
	}
	return e.records.FindByNaturalKey(ctx, ownerID, desc.Type, key)
}

func (e *syncEngine) createLocal(ctx context.Context, ownerID int64, desc models.ObjectDescriptor, remote models.RemoteRecord, entry models.SyncAuditEntry) (models.Operation, models.Status, error) {
	now := e.now()
	fields := remote.Fields.Only(desc.Fields)

	rec := models.LocalRecord{
		ID:           e.ids.Generate(),
		OwnerID:      ownerID,
		ObjectType:   desc.Type,
		NaturalKey:   naturalKey(fields, desc),
		RemoteID:     remote.ID,
		Fields:       fields,
		SyncedFields: fields.Clone(),
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSyncedAt: &now,
	}

	entry.Operation = models.OperationCreate
	created, err := e.records.Create(ctx, rec)
	if err != nil {
		e.fail(ctx, entry, fmt.Errorf("creating local record: %w", err))
		return entry.Operation, models.StatusFailed, err
	}

	entry.LocalObjectID = created.ID
	entry.Status = models.StatusSuccess
	_, _ = e.audit.Write(ctx, entry)
	return entry.Operation, models.StatusSuccess, nil
}

// applyLocal stores local as reconciled. Local edits to writable fields that
// the remote side does not have yet keep the record pending for the outbound
// pass.
func (e *syncEngine) applyLocal(ctx context.Context, desc models.ObjectDescriptor, local models.LocalRecord, entry models.SyncAuditEntry) (models.Operation, models.Status, error) {
	now := e.now()
	if len(models.Diff(local.Fields, local.SyncedFields, desc.Writable())) == 0 || local.Deleted {
		local.LastSyncedAt = &now
	}

	if err := e.records.ApplyRemote(ctx, local, now); err != nil {
		e.fail(ctx, entry, fmt.Errorf("applying remote state: %w", err))
		return entry.Operation, models.StatusFailed, err
	}

	entry.Status = models.StatusSuccess
	_, _ = e.audit.Write(ctx, entry)
	return entry.Operation, models.StatusSuccess, nil
}

// recordConflict logs a CONFLICT entry unless an unresolved one with the
// same snapshots is already open for the object.
func (e *syncEngine) recordConflict(
	ctx context.Context,
	desc models.ObjectDescriptor,
	local models.LocalRecord,
	remote models.RemoteRecord,
	conflicting []string,
	entry models.SyncAuditEntry,
) (models.Operation, models.Status, error) {
	data := &models.ConflictData{
		RemoteSnapshot:    remote.Fields.Only(desc.Fields),
		LocalSnapshot:     local.Fields.Only(desc.Fields),
		ConflictingFields: conflicting,
		RemoteModifiedAt:  remote.LastModifiedAt,
	}

	open, err := e.auditLog.List(ctx, models.AuditFilter{
		OwnerID:        entry.OwnerID,
		Status:         models.StatusConflict,
		ObjectType:     desc.Type,
		RemoteObjectID: remote.ID,
		Limit:          1,
	})
	if err == nil && len(open) > 0 && sameConflict(open[0].ConflictData, data, desc.Fields) {
		return entry.Operation, models.StatusConflict, nil
	}

	logger.FromContext(ctx).Warn().
		Str("local_id", local.ID).
		Str("remote_id", remote.ID).
		Strs("fields", conflicting).
		Msg("conflicting changes on both sides")

	entry.Status = models.StatusConflict
	entry.ConflictData = data
	_, _ = e.audit.Write(ctx, entry)
	return entry.Operation, models.StatusConflict, nil
}

func sameConflict(a, b *models.ConflictData, names []string) bool {
	if a == nil || b == nil {
		return false
	}
	return len(models.Diff(a.RemoteSnapshot, b.RemoteSnapshot, names)) == 0 &&
		len(models.Diff(a.LocalSnapshot, b.LocalSnapshot, names)) == 0
}

// classify splits the fields where remote and local values differ. A field
// changed only remotely is incoming. A field changed locally since the last
// sync is kept when the remote side still holds the synced value and
// conflicts when both sides moved it.
func classify(local models.LocalRecord, remote models.RemoteRecord, names, all []string) (incoming, conflicting []string) {
	changed := make(map[string]struct{})
	for _, n := range local.LocallyChanged(all) {
		changed[n] = struct{}{}
	}

	for _, n := range models.Diff(remote.Fields, local.Fields, names) {
		if _, ok := changed[n]; !ok {
			incoming = append(incoming, n)
			continue
		}
		if !models.FieldEqual(remote.Fields[n], local.SyncedFields[n]) {
			conflicting = append(conflicting, n)
		}
	}
	return incoming, conflicting
}

// presentFields returns the names of desc fields carried by the payload.
func presentFields(fields models.Fields, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := fields[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

func naturalKey(fields models.Fields, desc models.ObjectDescriptor) string {
	if desc.NaturalKey == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(fields.String(desc.NaturalKey)))
}

func operationForChange(change models.ChangeType) models.Operation {
	switch change {
	case models.ChangeCreate:
		return models.OperationCreate
	case models.ChangeDelete:
		return models.OperationDelete
	default:
		return models.OperationUpdate
	}
}

// OverwriteLocal replaces the synchronized fields of a linked local record
// with fields and marks them as the synced state.
func (e *syncEngine) OverwriteLocal(ctx context.Context, ownerID int64, objectType models.ObjectType, remoteID string, fields models.Fields) error {
	desc, err := e.registry.Describe(objectType)
	if err != nil {
		return err
	}

	unlock := e.objects.Lock(objectKey{ownerID: ownerID, remoteID: remoteID})
	defer unlock()

	rec, err := e.records.FindByRemoteID(ctx, ownerID, objectType, remoteID)
	if err != nil {
		return fmt.Errorf("loading local record: %w", err)
	}

	merged := rec.Fields.Clone()
	for _, n := range desc.Fields {
		if v, ok := fields[n]; ok {
			merged[n] = v
		}
	}
	rec.Fields = merged
	rec.SyncedFields = merged.Only(desc.Fields)
	rec.NaturalKey = naturalKey(merged, desc)
	now := e.now()
	rec.LastSyncedAt = &now

	if err = e.records.ApplyRemote(ctx, rec, now); err != nil {
		return fmt.Errorf("storing resolved state: %w", err)
	}
	return nil
}
